package booking

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceIDs   []uint
	Date         string // YYYY-MM-DD, chave opaca
}

// BookedSlot expõe a agenda ocupada do barbeiro (com status, para a UI).
type BookedSlot struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}
