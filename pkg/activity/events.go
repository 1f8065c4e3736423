package activity

import "time"

const (
	// VerbBuilt marks a beverage that was assembled and accepted.
	VerbBuilt = "beverage.built"
	// VerbRejected marks a beverage refused by an order rule.
	VerbRejected = "beverage.rejected"

	objectBeverage = "beverage"
)

// BeverageEventInput is the data shared by beverage events.
type BeverageEventInput struct {
	ID          string
	Base        string
	Size        string
	Condiments  []string
	Description string
	Cost        string
	Rule        string
	Metadata    map[string]any
	OccurredAt  time.Time
}

// BuildBuiltEvent describes an accepted beverage.
func BuildBuiltEvent(input BeverageEventInput) Event {
	return buildBeverageEvent(VerbBuilt, input)
}

// BuildRejectedEvent describes a beverage refused by input.Rule.
func BuildRejectedEvent(input BeverageEventInput) Event {
	return buildBeverageEvent(VerbRejected, input)
}

func buildBeverageEvent(verb string, input BeverageEventInput) Event {
	metadata := cloneMap(input.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["base"] = input.Base
	metadata["size"] = input.Size
	metadata["condiments"] = append([]string{}, input.Condiments...)
	if input.Description != "" {
		metadata["description"] = input.Description
	}
	if input.Cost != "" {
		metadata["cost"] = input.Cost
	}
	if input.Rule != "" {
		metadata["rule"] = input.Rule
	}
	return Event{
		Verb:       verb,
		ObjectType: objectBeverage,
		ObjectID:   input.ID,
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}
