package audit

import (
	"log"

	"github.com/BruksfildServices01/barberpro-api/internal/domain/account"
)

type Event struct {
	AccountKind account.Kind
	AccountID   uint
	Action      string
	Entity      string
	EntityID    *uint
	Metadata    any
}

// Dispatcher grava auditoria fora do caminho da requisição: fila
// cheia descarta o evento em vez de travar ou quebrar a API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			string(ev.AccountKind),
			ev.AccountID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
