package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// EventCharacterGenerated fires once per finished character
const EventCharacterGenerated = "chargen.character_generated"

// Event context keys
const (
	ContextKeyIndex   = "index"
	ContextKeyRuleset = "ruleset"
)

// PublishGenerated announces a finished character on the bus. index is the
// character's position in its batch.
func PublishGenerated(ctx context.Context, bus events.EventBus, character *dnd5e.Character, index int) error {
	if bus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if character == nil {
		return errors.InvalidArgument("character is required")
	}

	event := events.NewGameEvent(EventCharacterGenerated, WrapCharacter(character), nil)
	event.Context().Set(ContextKeyIndex, index)
	event.Context().Set(ContextKeyRuleset, character.Ruleset)

	if err := bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", EventCharacterGenerated)
	}
	return nil
}

// OnGenerated subscribes fn to finished characters and returns the
// subscription ID for Unsubscribe
func OnGenerated(bus events.EventBus, fn func(ctx context.Context, character *dnd5e.Character, index int) error) string {
	return bus.SubscribeFunc(EventCharacterGenerated, 0, func(ctx context.Context, event events.Event) error {
		character, ok := ExtractCharacter(event.Source())
		if !ok {
			return nil
		}

		index := -1
		if v, ok := event.Context().Get(ContextKeyIndex); ok {
			if i, ok := v.(int); ok {
				index = i
			}
		}

		return fn(ctx, character, index)
	})
}
