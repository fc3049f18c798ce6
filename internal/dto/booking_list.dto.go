package dto

type BookingListDTO struct {
	ID         uint     `json:"id"`
	Reference  string   `json:"reference"`
	Date       string   `json:"date"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Status     string   `json:"status"`
	ClientName string   `json:"client_name"`
	Services   []string `json:"services"`
}
