package pets

import "time"

// Sex define el sexo del cachorro.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func ParseSex(s string) (Sex, bool) {
	switch Sex(s) {
	case SexMale, SexFemale, SexUnknown:
		return Sex(s), true
	case "":
		return SexUnknown, true
	default:
		return "", false
	}
}

// Pet representa el perfil de un cachorro (el "puppy book").
// BirthDate es obligatoria para estimar crecimiento, pero no para crear el perfil.
type Pet struct {
	ID          string
	OwnerUserID string

	Name  string
	Breed string // texto libre, p.ej. "labrador"
	Sex   Sex

	BirthDate *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
