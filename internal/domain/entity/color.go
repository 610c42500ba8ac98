package entity

// Color é a cor de exibição associada a um status
type Color string

const (
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
	ColorPurple Color = "purple"
)

// StatusView é o par rótulo/cor exibido para um status
type StatusView struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color Color  `json:"color"`
}
