package domain

// VehicleType distinguishes cars from motorcycles (lavage only)
type VehicleType string

const (
	VehicleCar  VehicleType = "voiture"
	VehicleMoto VehicleType = "moto"
)

// SizeClass drives the price tier
type SizeClass string

// Car size classes
const (
	SizeCitadine   SizeClass = "citadine"
	SizeBerline    SizeClass = "berline"
	SizeCommercial SizeClass = "commercial"
	SizePickup     SizeClass = "pickup"
)

// Two-wheeler size classes
const (
	SizeMotoSmall SizeClass = "petit"
	SizeMotoLarge SizeClass = "grande"
)

// CarSizeClasses lists the car tiers in display order
var CarSizeClasses = []SizeClass{SizeCitadine, SizeBerline, SizeCommercial, SizePickup}

// MotoSizeClasses lists the two-wheeler tiers
var MotoSizeClasses = []SizeClass{SizeMotoSmall, SizeMotoLarge}

// SubOption is the per-service variant (wash speed, polish scope)
type SubOption string

// Lavage sub-options
const (
	WashRapide  SubOption = "rapide"
	WashExpress SubOption = "express"
)

// Polissage sub-options
const (
	PolishComplete  SubOption = "complete"
	PolishPerPieces SubOption = "nb_pieces"
)

// Role of the authenticated user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength  = 100
	MaxYearLength  = 4
	MaxPlateLength = 20
	MaxColorLength = 64
	MaxPieceCount  = 50
	MaxEmailLength = 254
)
