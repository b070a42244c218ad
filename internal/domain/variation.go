package domain

// Direction indica o sentido de uma variação entre períodos
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Variation é o resultado da comparação entre dois períodos.
// Quando Available é falso a variação é indisponível e os demais campos não têm significado.
type Variation struct {
	Available  bool      `json:"available"`
	Percentage float64   `json:"percentage"`
	Direction  Direction `json:"direction,omitempty"`
}

// Unavailable cria uma variação indisponível
func Unavailable() Variation {
	return Variation{}
}

// Delta cria uma variação disponível
func Delta(percentage float64, direction Direction) Variation {
	return Variation{Available: true, Percentage: percentage, Direction: direction}
}
