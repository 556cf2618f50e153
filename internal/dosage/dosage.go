// Package dosage calcula raciones diarias a partir de una guía de alimentación
// (tabla de rangos de peso → rangos de gramos).
package dosage

import (
	"math"
	"sort"
)

// FeedingGuideEntry es una fila de la guía: kg → gramos/día.
type FeedingGuideEntry struct {
	WeightMin float64 `json:"weight_min" yaml:"weight_min"`
	WeightMax float64 `json:"weight_max" yaml:"weight_max"`
	AmountMin float64 `json:"amount_min" yaml:"amount_min"`
	AmountMax float64 `json:"amount_max" yaml:"amount_max"`
}

func (e FeedingGuideEntry) contains(w float64) bool {
	return w >= e.WeightMin && w <= e.WeightMax
}

func (e FeedingGuideEntry) midWeight() float64 { return (e.WeightMin + e.WeightMax) / 2 }
func (e FeedingGuideEntry) midAmount() float64 { return (e.AmountMin + e.AmountMax) / 2 }

// interpolate asume que la fila contiene w.
// Fila degenerada (WeightMin == WeightMax): devuelve AmountMin sin redondear.
func (e FeedingGuideEntry) interpolate(w float64) float64 {
	if e.WeightMin == e.WeightMax {
		return e.AmountMin
	}
	ratio := (w - e.WeightMin) / (e.WeightMax - e.WeightMin)
	return math.Round(e.AmountMin + ratio*(e.AmountMax-e.AmountMin))
}

// CalculateDosage devuelve la ración diaria (g) para targetWeight.
// ok=false significa "no se puede calcular": guía vacía o peso fuera de la tabla.
// No extrapola más allá de los bordes.
func CalculateDosage(guide []FeedingGuideEntry, targetWeight float64) (amount float64, ok bool) {
	if len(guide) == 0 || math.IsNaN(targetWeight) {
		return 0, false
	}

	// 1) fila que contiene el peso (en el orden recibido)
	for _, e := range guide {
		if e.contains(targetWeight) {
			return e.interpolate(targetWeight), true
		}
	}

	// 2) hueco entre dos filas consecutivas: interpolar entre puntos medios
	sorted := sortedBy(guide, func(e FeedingGuideEntry) float64 { return e.WeightMin })
	for i := 0; i+1 < len(sorted); i++ {
		lo, hi := sorted[i], sorted[i+1]
		if targetWeight > lo.WeightMax && targetWeight < hi.WeightMin {
			return math.Round(lerpMid(lo, hi, targetWeight)), true
		}
	}

	// 3) fuera de rango
	return 0, false
}

// InterpolateNearest es la variante usada para la ración ajustada por raza:
// si ninguna fila contiene el peso, interpola (o extrapola) con las dos filas
// de punto medio más cercano. Solo falla con una guía vacía.
func InterpolateNearest(guide []FeedingGuideEntry, targetWeight float64) (float64, bool) {
	if len(guide) == 0 || math.IsNaN(targetWeight) {
		return 0, false
	}

	for _, e := range guide {
		if e.contains(targetWeight) {
			return e.interpolate(targetWeight), true
		}
	}

	if len(guide) == 1 {
		return math.Round(guide[0].midAmount()), true
	}

	sorted := sortedBy(guide, FeedingGuideEntry.midWeight)
	n := len(sorted)

	i := 0
	switch {
	case targetWeight <= sorted[0].midWeight():
		i = 0
	case targetWeight >= sorted[n-1].midWeight():
		i = n - 2
	default:
		for i = 0; i+1 < n-1; i++ {
			if targetWeight <= sorted[i+1].midWeight() {
				break
			}
		}
	}

	amount := lerpMid(sorted[i], sorted[i+1], targetWeight)
	return math.Round(math.Max(0, amount)), true
}

func lerpMid(a, b FeedingGuideEntry, w float64) float64 {
	wa, wb := a.midWeight(), b.midWeight()
	if wa == wb {
		return a.midAmount()
	}
	return a.midAmount() + (w-wa)/(wb-wa)*(b.midAmount()-a.midAmount())
}

func sortedBy(guide []FeedingGuideEntry, key func(FeedingGuideEntry) float64) []FeedingGuideEntry {
	out := make([]FeedingGuideEntry, len(guide))
	copy(out, guide)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}
