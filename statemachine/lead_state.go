package statemachine

import (
	"fmt"
	"strings"

	"hqd-api/models"
)

// Transition defines a valid pipeline move and who can perform it
type Transition struct {
	From  models.LeadStatus `json:"from"`
	To    models.LeadStatus `json:"to"`
	Actor models.StaffRole  `json:"actor"`
}

// validTransitions is the authoritative lead pipeline definition
var validTransitions = []Transition{
	// First call or message back to the prospect
	{From: models.LeadNew, To: models.LeadContacted, Actor: models.RoleCoordinator},
	{From: models.LeadNew, To: models.LeadContacted, Actor: models.RoleAdmin},
	// Custom quote sent
	{From: models.LeadContacted, To: models.LeadQuoted, Actor: models.RoleCoordinator},
	{From: models.LeadContacted, To: models.LeadQuoted, Actor: models.RoleAdmin},
	// Signed; only admins confirm a booking
	{From: models.LeadQuoted, To: models.LeadBooked, Actor: models.RoleAdmin},
	// Any open lead can be lost
	{From: models.LeadNew, To: models.LeadLost, Actor: models.RoleCoordinator},
	{From: models.LeadNew, To: models.LeadLost, Actor: models.RoleAdmin},
	{From: models.LeadContacted, To: models.LeadLost, Actor: models.RoleCoordinator},
	{From: models.LeadContacted, To: models.LeadLost, Actor: models.RoleAdmin},
	{From: models.LeadQuoted, To: models.LeadLost, Actor: models.RoleCoordinator},
	{From: models.LeadQuoted, To: models.LeadLost, Actor: models.RoleAdmin},
}

type transitionKey struct {
	From  models.LeadStatus
	To    models.LeadStatus
	Actor models.StaffRole
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

var knownStatuses = map[models.LeadStatus]bool{
	models.LeadNew:       true,
	models.LeadContacted: true,
	models.LeadQuoted:    true,
	models.LeadBooked:    true,
	models.LeadLost:      true,
}

// IsKnown reports whether s is a pipeline status at all
func IsKnown(s models.LeadStatus) bool {
	return knownStatuses[s]
}

// IsTerminal reports whether no further move is possible from s
func IsTerminal(s models.LeadStatus) bool {
	return IsKnown(s) && len(ValidTransitionsFrom(s)) == 0
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.LeadStatus) []models.LeadStatus {
	var nexts []models.LeadStatus
	seen := map[models.LeadStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move a lead from one state to another
func CanTransition(from, to models.LeadStatus, actor models.StaffRole) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("invalid transition: %s → %s is not allowed for %q. Valid transitions from %s are: %s",
		from, to, actor, from, describeValidFrom(from))
}

func describeValidFrom(status models.LeadStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full pipeline for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, len(validTransitions))
	copy(out, validTransitions)
	return out
}
