package trip

type LodgingOption struct {
	Name     string `groups:"basic"`
	Location string `groups:"basic"`

	PricePerNight float64 `groups:"basic"`
	Rating        float64 `groups:"basic"`
	Reviews       int     `groups:"basic"`

	URL string `groups:"detailed"`
}
