package fixtures

import "github.com/tripplanner/tripplanner/pkg/dataaggregator/source"

// Fixed timetables used when no live or file based provider is configured.
// They are identical for every route and date.
var Flights = []source.TransportRecord{
	{Mode: "flight", Provider: "ITA Airways", Departure: "08:00", DurationMinutes: 145, Price: 79, Transfers: 0, Notes: "Direct"},
	{Mode: "flight", Provider: "Lufthansa", Departure: "09:00", DurationMinutes: 220, Price: 129, Transfers: 1, Notes: "1 stop FRA"},
}

var Trains = []source.TransportRecord{
	{Mode: "train", Provider: "Frecciarossa", Departure: "07:30", DurationMinutes: 185, Price: 59, Transfers: 0, Notes: "High speed"},
	{Mode: "train", Provider: "Italo", Departure: "08:30", DurationMinutes: 240, Price: 49, Transfers: 0, Notes: "Direct"},
}

var Drives = []source.TransportRecord{
	{Mode: "drive", Provider: "Car (estimate)", Departure: "06:45", DurationMinutes: 260, Price: 45, Transfers: 0, Notes: "Fuel and tolls estimate"},
}

var Lodgings = []source.LodgingRecord{
	{Name: "Hotel Centro Storico", PricePerNight: 110, Rating: 4.5, Reviews: 1800, URL: "https://example.com/hotel1"},
	{Name: "B&B Panoramico", PricePerNight: 85, Rating: 4.7, Reviews: 650, URL: "https://example.com/bnb1"},
	{Name: "Aparthotel Easy", PricePerNight: 95, Rating: 4.2, Reviews: 420, URL: "https://example.com/apt1"},
	{Name: "Ostello Smart", PricePerNight: 45, Rating: 4.0, Reviews: 1200, URL: "https://example.com/hostel1"},
}
