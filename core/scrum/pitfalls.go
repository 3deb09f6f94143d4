package scrum

// PitfallsFor returns the facilitation anti-patterns most often seen in
// an event type. The switch is exhaustive over the closed enum, so no
// default branch is needed.
func (kb *KnowledgeBase) PitfallsFor(et EventType) []string {
	switch et {
	case EventDaily:
		return []string{
			"Status reporting to the Scrum Master instead of team coordination",
			"Discussing details rather than focusing on the Sprint Goal",
			"Exceeding the 15-minute timebox",
			"Not addressing impediments",
			"Treating it as a micromanagement opportunity",
		}
	case EventPlanning:
		return []string{
			"Focusing on output (tasks) rather than outcome (Sprint Goal)",
			"Insufficient Product Backlog refinement beforehand",
			"Product Owner dictating how work should be done",
			"Overcommitting based on external pressure",
			"Not creating a clear Sprint Goal",
		}
	case EventReview:
		return []string{
			"Treating it as a delivery milestone rather than a learning opportunity",
			"Making it a presentation rather than a collaborative inspection",
			"Not involving stakeholders meaningfully",
			"Focusing only on completed items without discussing the Sprint as a whole",
			"Not using feedback to inform Product Backlog adaptation",
		}
	case EventRetro:
		return []string{
			"Identifying issues without creating actionable improvement plans",
			"Focusing on people/blame rather than systems/processes",
			"Not creating psychological safety",
			"Manager presence inhibiting honest discussion",
			"Not implementing improvements from previous retrospectives",
		}
	}
	return nil
}
