package growth

// BreedCategory es la clase de tamaño según peso adulto esperado.
type BreedCategory string

const (
	CategoryToy    BreedCategory = "toy"
	CategorySmall  BreedCategory = "small"
	CategoryMedium BreedCategory = "medium"
	CategoryLarge  BreedCategory = "large"
	CategoryGiant  BreedCategory = "giant"
)

// MaxAdultWeight es el techo biológico absoluto (kg).
const MaxAdultWeight = 80.0

// CategoryProfile agrupa los valores estáticos de una categoría.
// MinWeight es exclusivo y MaxWeight inclusivo.
type CategoryProfile struct {
	Category            BreedCategory
	MinWeight           float64
	MaxWeight           float64
	MetabolicMultiplier float64
	MaturityAgeWeeks    int
}

// Orden ascendente por peso; CategoryForWeight depende de ello.
var categoryTable = [...]CategoryProfile{
	{Category: CategoryToy, MinWeight: 0, MaxWeight: 5, MetabolicMultiplier: 1.15, MaturityAgeWeeks: 32},
	{Category: CategorySmall, MinWeight: 5, MaxWeight: 15, MetabolicMultiplier: 1.05, MaturityAgeWeeks: 44},
	{Category: CategoryMedium, MinWeight: 15, MaxWeight: 30, MetabolicMultiplier: 1.00, MaturityAgeWeeks: 52},
	{Category: CategoryLarge, MinWeight: 30, MaxWeight: 50, MetabolicMultiplier: 0.95, MaturityAgeWeeks: 72},
	{Category: CategoryGiant, MinWeight: 50, MaxWeight: MaxAdultWeight, MetabolicMultiplier: 0.90, MaturityAgeWeeks: 96},
}

// Categories devuelve la tabla completa (copia).
func Categories() []CategoryProfile {
	out := make([]CategoryProfile, len(categoryTable))
	copy(out, categoryTable[:])
	return out
}

// CategoryForWeight: toy ≤5kg, small ≤15kg, medium ≤30kg, large ≤50kg, giant >50kg.
func CategoryForWeight(kg float64) BreedCategory {
	for _, p := range categoryTable[:len(categoryTable)-1] {
		if kg <= p.MaxWeight {
			return p.Category
		}
	}
	return CategoryGiant
}

// Profile devuelve el perfil de la categoría. Una categoría desconocida
// se trata como medium (multiplicador neutro).
func Profile(c BreedCategory) CategoryProfile {
	for _, p := range categoryTable {
		if p.Category == c {
			return p
		}
	}
	return categoryTable[2]
}

func (c BreedCategory) Valid() bool {
	for _, p := range categoryTable {
		if p.Category == c {
			return true
		}
	}
	return false
}

func MaturityAgeWeeks(c BreedCategory) int {
	return Profile(c).MaturityAgeWeeks
}

// MetabolicMultiplier devuelve el factor de ración según peso adulto esperado.
func MetabolicMultiplier(expectedAdultKg float64) float64 {
	return Profile(CategoryForWeight(expectedAdultKg)).MetabolicMultiplier
}
