package trip

type Itinerary struct {
	Title  string  `groups:"basic"`
	Events []Event `groups:"basic"`
}

func (i Itinerary) Validate() error {
	for _, event := range i.Events {
		if err := event.Validate(); err != nil {
			return err
		}
	}

	return nil
}
