package calculator

// Denomination identifies one face value in the fixed cash set.
// Constants are declared in descending order of value.
type Denomination int

const (
	Note1000 Denomination = iota
	Note500
	Note100
	Note50
	Note20
	Coin10
	Coin5

	denominationCount
)

// Kind of physical cash a denomination is paid out in.
const (
	KindNote = "note"
	KindCoin = "coin"
)

var faceValues = [denominationCount]int{1000, 500, 100, 50, 20, 10, 5}

// Denominations returns every denomination in descending order of value.
func Denominations() []Denomination {
	out := make([]Denomination, denominationCount)
	for i := range out {
		out[i] = Denomination(i)
	}
	return out
}

// Value is the face value of the denomination.
func (d Denomination) Value() int {
	if !d.valid() {
		return 0
	}
	return faceValues[d]
}

// Kind reports whether the denomination is a note or a coin.
func (d Denomination) Kind() string {
	if d >= Coin10 {
		return KindCoin
	}
	return KindNote
}

func (d Denomination) valid() bool {
	return d >= 0 && d < denominationCount
}
