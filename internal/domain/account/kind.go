package account

// Kind separa os dois tipos de conta. E-mails são únicos por tipo,
// não entre tipos.
type Kind string

const (
	KindProfessional Kind = "professional"
	KindClient       Kind = "client"
)

// MaxGalleryPhotos é o teto de fotos de galeria por profissional.
const MaxGalleryPhotos = 6

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindProfessional, KindClient:
		return Kind(s), true
	}
	return "", false
}
