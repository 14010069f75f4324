package models

// Equipment status for instruments that can currently be booked.
const EquipmentStatusAvailable = "available"

// Equipment describes one bookable laboratory instrument.
type Equipment struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Type     string `bson:"type" json:"type"`
	Status   string `bson:"status" json:"status"`
	Location string `bson:"location" json:"location"`
}
