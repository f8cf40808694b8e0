package entities

type Branch struct {
	Code string
	Name string
}
