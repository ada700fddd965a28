// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package seed supplies the startup fixture for rima.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rimahq/rima-tui/internal/model"
)

// CurrentUserID is the user the session runs as in the built-in fixture.
const CurrentUserID = "u_sara"

// Fixture is the complete startup state.
type Fixture struct {
	Roster        []model.User      `json:"roster"`
	Workspaces    []model.Workspace `json:"workspaces"`
	CurrentUserID string            `json:"current_user_id"`
}

// =============================================================================
// BUILT-IN FIXTURE
// =============================================================================

// Roster returns the built-in user roster. Sara owns the session; the rest
// are invitable collaborators.
func Roster() []model.User {
	return []model.User{
		{ID: "u_sara", Name: "Sara", AvatarColor: "231", Role: "Owner"},
		{ID: "u1", Name: "Alex", AvatarColor: "42"},
		{ID: "u2", Name: "Jordan", AvatarColor: "214"},
		{ID: "u3", Name: "Lina", AvatarColor: "204"},
		{ID: "u4", Name: "Ali", AvatarColor: "39"},
		{ID: "u5", Name: "Khaled", AvatarColor: "135"},
	}
}

// welcome builds the assistant's opening message for a workspace.
func welcome(title string) model.Message {
	return model.Message{
		ID:        model.NewID(),
		Sender:    model.AssistantSender(),
		Content:   fmt.Sprintf("Welcome to the %s workspace. I've synthesized the latest trip details for your group.", title),
		Timestamp: time.Now(),
	}
}

// Workspaces returns the built-in workspace fixture.
func Workspaces() []model.Workspace {
	users := Roster()
	sara, alex, jordan, lina := users[0], users[1], users[2], users[3]

	return []model.Workspace{
		{
			ID:           "room_trip_main",
			Title:        "Europe Trip with the Ladies",
			Description:  "Main planning room for 10-day multi-city Europe trip.",
			Category:     "LIFE",
			Theme:        "#22D1EE",
			Schedule:     "APR 5-15 2026",
			Tags:         []string{"Flights", "Hotels", "Itinerary"},
			Progress:     30,
			ProgressNote: "Cities defined; bookings and visas still open.",
			ProfileID:    "p_life",
			Members:      []model.User{sara, alex, jordan, lina},
			Messages:     []model.Message{welcome("Europe Trip with the Ladies")},
			Budget:       "$12,000",
			Deadline:     "05 Apr",
			Phase:        "Planning",
			Channels: []model.Channel{
				{
					ID:          "c_itinerary",
					Title:       "Itinerary",
					Description: "Day-by-day breakdown.",
					Members:     []model.User{sara, alex},
					Messages:    []model.Message{},
					Unread:      2,
				},
				{
					ID:          "c_group_chat",
					Title:       "Group Chat",
					Description: "General discussions.",
					Members:     []model.User{sara, alex, jordan, lina},
					Messages:    []model.Message{},
				},
			},
		},
		{
			ID:           "room_paris",
			Title:        "Paris",
			Description:  "City plan: 3 nights focused on cafés, museums and shopping.",
			Category:     "LIFE",
			Theme:        "#22D1EE",
			Schedule:     "3 Nights",
			Tags:         []string{"Museums", "Cafés", "Shopping"},
			Progress:     45,
			ProgressNote: "Theme decided; hotel options under review.",
			ProfileID:    "p_life",
			Members:      []model.User{sara, lina},
			Messages:     []model.Message{welcome("Paris")},
			Channels: []model.Channel{
				{
					ID:          "c_louvre",
					Title:       "Museums",
					Description: "Tickets and timing.",
					Members:     []model.User{sara},
					Messages:    []model.Message{},
				},
			},
		},
		{
			ID:           "room_milan",
			Title:        "Milan",
			Description:  "2-night stay with shopping and a possible lake day.",
			Category:     "LIFE",
			Theme:        "#22D1EE",
			Schedule:     "2 Nights",
			Tags:         []string{"Shopping", "Day Trip", "Leisure"},
			Progress:     40,
			ProgressNote: "Planning in progress; Noora leading activities.",
			ProfileID:    "p_life",
			Members:      []model.User{sara, jordan},
			Messages:     []model.Message{welcome("Milan")},
			Channels:     []model.Channel{},
		},
		{
			ID:           "room_rome",
			Title:        "Rome",
			Description:  "4-night plan centered on history, food, and walking tours.",
			Category:     "LIFE",
			Theme:        "#22D1EE",
			Schedule:     "4 Nights",
			Tags:         []string{"History", "Food", "Tours"},
			Progress:     55,
			ProgressNote: "Structure defined; awaiting hotel confirmation.",
			ProfileID:    "p_life",
			Members:      []model.User{sara, alex, jordan},
			Messages:     []model.Message{welcome("Rome")},
			Channels:     []model.Channel{},
		},
		{
			ID:           "room_bookings",
			Title:        "Bookings",
			Description:  "Central space for flights, trains, hotels, and visa uploads.",
			Category:     "LIFE",
			Theme:        "#22D1EE",
			Schedule:     "APR 2026",
			Tags:         []string{"Flights", "Hotels", "Visas"},
			Progress:     25,
			ProgressNote: "No bookings confirmed yet; cost tracking enabled.",
			ProfileID:    "p_life",
			Members:      []model.User{sara},
			Messages:     []model.Message{welcome("Bookings")},
			Channels: []model.Channel{
				{
					ID:          "c_visas",
					Title:       "Visas",
					Description: "Document checklist.",
					Members:     []model.User{sara},
					Messages:    []model.Message{},
					Unread:      1,
				},
			},
		},
	}
}

// Default returns the built-in fixture.
func Default() Fixture {
	return Fixture{
		Roster:        Roster(),
		Workspaces:    Workspaces(),
		CurrentUserID: CurrentUserID,
	}
}

// =============================================================================
// JSON OVERRIDE
// =============================================================================

// LoadFile reads a fixture from a JSON file. Message senders are restored
// as the assistant so transcripts in custom fixtures render with the
// persona name; fixtures that need user-authored history should start
// empty and replay sends instead.
func LoadFile(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("reading fixture: %w", err)
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parsing fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return Fixture{}, err
	}

	for wi := range f.Workspaces {
		restoreSenders(f.Workspaces[wi].Messages)
		for ci := range f.Workspaces[wi].Channels {
			restoreSenders(f.Workspaces[wi].Channels[ci].Messages)
		}
	}
	return f, nil
}

// restoreSenders fills in the sender on messages deserialized from JSON.
func restoreSenders(msgs []model.Message) {
	for i := range msgs {
		msgs[i].Sender = model.AssistantSender()
	}
}

// validate rejects fixtures the store cannot hold.
func (f Fixture) validate() error {
	if f.CurrentUserID == "" {
		return fmt.Errorf("fixture missing current_user_id")
	}
	found := false
	for _, u := range f.Roster {
		if u.ID == f.CurrentUserID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("current user %q not in roster", f.CurrentUserID)
	}

	seen := make(map[string]string)
	for _, w := range f.Workspaces {
		if w.ID == "" {
			return fmt.Errorf("workspace %q has no ID", w.Title)
		}
		for _, c := range w.Channels {
			if prev, dup := seen[c.ID]; dup {
				return fmt.Errorf("channel ID %q appears in workspaces %q and %q", c.ID, prev, w.ID)
			}
			seen[c.ID] = w.ID
		}
	}
	return nil
}

// Load returns the fixture at path, or the built-in one when path is empty.
func Load(path string) (Fixture, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
