// Package scrum holds the static Scrum Guide 2020 corpus that grounds
// every composed coaching prompt: roles, events, values, patterns, and
// common pitfalls, keyed by the four canonical event types.
package scrum

// Role describes one Scrum accountability.
type Role struct {
	Name             string
	Description      string
	Accountabilities []string
}

// Event describes one canonical Scrum event.
type Event struct {
	Name        string
	Description string
	Timebox     string
	Topics      []string
}

// Values holds the five Scrum values and their prose description.
type Values struct {
	Names       []string
	Description string
}

// Theory holds the empirical foundation of Scrum.
type Theory struct {
	Foundations string
	Pillars     []string
}

// KnowledgeBase is an immutable corpus loaded once at process start.
// All lookups are total over the closed EventType enum and safe for
// concurrent use.
type KnowledgeBase struct {
	Roles    map[string]Role
	Events   map[EventType]Event
	Values   Values
	Theory   Theory
	Patterns []Pattern
}

// Event returns the record for a canonical event type.
func (kb *KnowledgeBase) Event(et EventType) Event {
	return kb.Events[et]
}

// PatternsFor filters patterns relevant to an event type, preserving
// declaration order. An empty result is valid, not an error.
func (kb *KnowledgeBase) PatternsFor(et EventType) []Pattern {
	var out []Pattern
	for _, p := range kb.Patterns {
		for _, rel := range p.RelevantEvents {
			if rel == et {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// NewKnowledgeBase builds the default corpus.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		Roles: map[string]Role{
			"developers": {
				Name:        "Developers",
				Description: "The people in the Scrum Team that are committed to creating any aspect of a usable Increment each Sprint.",
				Accountabilities: []string{
					"Creating a plan for the Sprint, the Sprint Backlog",
					"Instilling quality by adhering to a Definition of Done",
					"Adapting their plan each day toward the Sprint Goal",
					"Holding each other accountable as professionals",
				},
			},
			"productOwner": {
				Name:        "Product Owner",
				Description: "The Product Owner is accountable for maximizing the value of the product resulting from work of the Scrum Team.",
				Accountabilities: []string{
					"Developing and explicitly communicating the Product Goal",
					"Creating and clearly communicating Product Backlog items",
					"Ordering Product Backlog items",
					"Ensuring that the Product Backlog is transparent, visible and understood",
				},
			},
			"scrumMaster": {
				Name:        "Scrum Master",
				Description: "The Scrum Master is accountable for establishing Scrum as defined in the Scrum Guide. They do this by helping everyone understand Scrum theory and practice, both within the Scrum Team and the organization.",
				Accountabilities: []string{
					"Coaching the team members in self-management and cross-functionality",
					"Helping the Scrum Team focus on creating high-value Increments that meet the Definition of Done",
					"Causing the removal of impediments to the Scrum Team's progress",
					"Ensuring that all Scrum events take place and are positive, productive, and kept within the timebox",
					"Helping find techniques for effective Product Goal definition and Product Backlog management",
					"Facilitating stakeholder collaboration as requested or needed",
					"Leading, training, and coaching the organization in its Scrum adoption",
				},
			},
		},
		Events: map[EventType]Event{
			EventDaily: {
				Name:        "Daily Scrum",
				Description: "The purpose of the Daily Scrum is to inspect progress toward the Sprint Goal and adapt the Sprint Backlog as necessary, adjusting the upcoming planned work.",
				Timebox:     "The Daily Scrum is a 15-minute event for the Developers of the Scrum Team.",
				Topics: []string{
					"The Developers can select whatever structure and techniques they want, as long as their Daily Scrum focuses on progress toward the Sprint Goal and produces an actionable plan for the next day of work.",
					"Daily Scrums improve communications, identify impediments, promote quick decision-making, and consequently eliminate the need for other meetings.",
				},
			},
			EventPlanning: {
				Name:        "Sprint Planning",
				Description: "Sprint Planning initiates the Sprint by laying out the work to be performed for the Sprint. This resulting plan is created by the collaborative work of the entire Scrum Team.",
				Timebox:     "Sprint Planning is timeboxed to a maximum of eight hours for a one-month Sprint. For shorter Sprints, the event is usually shorter.",
				Topics: []string{
					"Topic One: Why is this Sprint valuable?",
					"Topic Two: What can be Done this Sprint?",
					"Topic Three: How will the chosen work get done?",
				},
			},
			EventReview: {
				Name:        "Sprint Review",
				Description: "The purpose of the Sprint Review is to inspect the outcome of the Sprint and determine future adaptations. The Scrum Team presents the results of their work to key stakeholders and progress toward the Product Goal is discussed.",
				Timebox:     "The Sprint Review is timeboxed to a maximum of four hours for a one-month Sprint. For shorter Sprints, the event is usually shorter.",
				Topics: []string{
					"The Scrum Team and stakeholders review what was accomplished in the Sprint and what has changed in their environment",
					"Attendees collaborate on what to do next",
					"The Product Backlog may also be adjusted to meet new opportunities",
				},
			},
			EventRetro: {
				Name:        "Sprint Retrospective",
				Description: "The purpose of the Sprint Retrospective is to plan ways to increase quality and effectiveness. The Scrum Team inspects how the last Sprint went with regards to individuals, interactions, processes, tools, and their Definition of Done.",
				Timebox:     "The Sprint Retrospective concludes the Sprint. It is timeboxed to a maximum of three hours for a one-month Sprint. For shorter Sprints, the event is usually shorter.",
				Topics: []string{
					"What went well during the Sprint?",
					"What problems did we encounter?",
					"How were those problems resolved?",
				},
			},
		},
		Values: Values{
			Names:       []string{"Commitment", "Focus", "Openness", "Respect", "Courage"},
			Description: "Successful use of Scrum depends on people becoming more proficient in living five values: Commitment, Focus, Openness, Respect, and Courage. The Scrum Team commits to achieving its goals and to supporting each other. Their primary focus is on the work of the Sprint to make the best possible progress toward these goals. The Scrum Team and its stakeholders are open about the work and the challenges. Scrum Team members respect each other to be capable, independent people, and are respected as such by the people with whom they work. The Scrum Team members have the courage to do the right thing, to work on tough problems.",
		},
		Theory: Theory{
			Foundations: "Scrum is founded on empiricism and lean thinking. Empiricism asserts that knowledge comes from experience and making decisions based on what is observed. Lean thinking reduces waste and focuses on the essentials.",
			Pillars:     []string{"Transparency", "Inspection", "Adaptation"},
		},
		Patterns: defaultPatterns(),
	}
}
