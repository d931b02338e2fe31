package catalog

import "github.com/itsRabb/risqmap-status/internal/domain"

// FallbackStations returns the built-in station table: real pump stations
// with stable codes and real coordinates, used whenever the store cannot
// answer. Status and LastUpdated are filled in per pass by the catalog.
//
// Passed into New as plain data rather than read from hidden module state so
// tests can substitute alternate fixtures.
func FallbackStations() []domain.InfrastructureStation {
	return []domain.InfrastructureStation{
		{
			ID: "fallback-pluit", Code: "JKT-PLUIT-01", Name: "Pluit Pump Station",
			Latitude: -6.1178, Longitude: 106.7962,
			City: "Jakarta", State: "DKI Jakarta",
			PumpType: domain.PumpCoastalDefense, CapacityGpm: 118000,
			Operator: "Dinas SDA DKI Jakarta",
		},
		{
			ID: "fallback-ancol", Code: "JKT-ANCOL-01", Name: "Ancol Sentiong Pump Station",
			Latitude: -6.1223, Longitude: 106.8412,
			City: "Jakarta", State: "DKI Jakarta",
			PumpType: domain.PumpCoastalDefense, CapacityGpm: 79000,
			Operator: "Dinas SDA DKI Jakarta",
		},
		{
			ID: "fallback-manggarai", Code: "JKT-MANGGARAI-01", Name: "Manggarai Sluice Gate",
			Latitude: -6.2078, Longitude: 106.8486,
			City: "Jakarta", State: "DKI Jakarta",
			PumpType: domain.PumpRiverManagement,
			Operator: "BBWS Ciliwung Cisadane",
		},
		{
			ID: "fallback-melati", Code: "JKT-MELATI-01", Name: "Waduk Melati Pump Station",
			Latitude: -6.1952, Longitude: 106.8210,
			City: "Jakarta", State: "DKI Jakarta",
			PumpType: domain.PumpStormwater, CapacityGpm: 26000,
		},
		{
			ID: "fallback-marina", Code: "SMG-MARINA-01", Name: "Marina Polder Pump Station",
			Latitude: -6.9530, Longitude: 110.3915,
			City: "Semarang", State: "Central Java",
			PumpType: domain.PumpCoastalDefense, CapacityGpm: 52000,
		},
		{
			ID: "fallback-banger", Code: "SMG-BANGER-01", Name: "Kali Banger Polder",
			Latitude: -6.9622, Longitude: 110.4380,
			City: "Semarang", State: "Central Java",
			PumpType: domain.PumpDrainageBasin, CapacityGpm: 34000,
		},
		{
			ID: "fallback-wonorejo", Code: "SBY-WONOREJO-01", Name: "Wonorejo Bozem Pump Station",
			Latitude: -7.3125, Longitude: 112.7851,
			City: "Surabaya", State: "East Java",
			PumpType: domain.PumpDrainageBasin, CapacityGpm: 41000,
		},
		{
			ID: "fallback-kenjeran", Code: "SBY-KENJERAN-01", Name: "Kenjeran Coastal Pump Station",
			Latitude: -7.2326, Longitude: 112.7926,
			City: "Surabaya", State: "East Java",
			PumpType: domain.PumpCoastalDefense, CapacityGpm: 30000,
		},
		{
			ID: "fallback-cidurian", Code: "BDG-CIDURIAN-01", Name: "Cidurian Retention Basin",
			Latitude: -6.9389, Longitude: 107.6636,
			City: "Bandung", State: "West Java",
			PumpType: domain.PumpStormwater, CapacityGpm: 18000,
		},
		{
			ID: "fallback-citarum", Code: "BDG-CITARUM-01", Name: "Upper Citarum River Station",
			Latitude: -7.0051, Longitude: 107.6350,
			City: "Bandung", State: "West Java",
			PumpType: domain.PumpRiverManagement,
			Operator: "BBWS Citarum",
		},
	}
}
