package customisation

type Colour int16

const (
	Green Colour = iota
	Red
	Blue
	Orange
)

var DefaultColours = map[Colour]int{
	Green:  0x2ECC71,
	Red:    0xFC3F35,
	Blue:   0x3472A5,
	Orange: 0xE67E22,
}

func (c Colour) Int16() int16 {
	return int16(c)
}

func (c Colour) Default() int {
	return DefaultColours[c]
}
