package coach

import "github.com/kairos-coach/kairos/core/scrum"

// Offline fallback content. Fallback mode is a first-class supported
// mode, not a degraded error path: with no provider credential
// configured the whole system runs offline for demonstration purposes.

// FallbackQuestion is the fixed icebreaker question returned in
// offline mode, for every vibe.
const FallbackQuestion = "What's something unexpected you learned recently that changed your perspective?"

// FallbackCoaching returns the fixed coaching reply for an event type
// in offline mode. The mapping is total over the closed enum.
func FallbackCoaching(et scrum.EventType) string {
	switch et {
	case scrum.EventDaily:
		return "That's a common Daily Scrum challenge. Consider this: is the conversation helping the Developers inspect progress toward the Sprint Goal and plan their next day of work? What question could you ask that shifts the focus from reporting status to coordinating as a team?"
	case scrum.EventPlanning:
		return "Sprint Planning works best when it answers three questions: why is this Sprint valuable, what can be done, and how will the work get done. Which of those is your team struggling with right now, and what would help them reach a shared Sprint Goal?"
	case scrum.EventReview:
		return "Remember that the Sprint Review is a working session, not a presentation. How might you invite stakeholders to collaborate on what to do next rather than passively watch a demo? What feedback would most help the Product Owner adapt the Product Backlog?"
	case scrum.EventRetro:
		return "Retrospectives create value when the team feels safe enough to be honest and leaves with one concrete improvement. What could you do to build psychological safety here, and how will the team know the improvement actually happened next Sprint?"
	}
	return "Let's think about how Scrum's pillars of transparency, inspection, and adaptation apply to this situation. What have you observed, and what experiment could you run next?"
}

// FallbackActivity returns the fixed team activity used in offline mode
// and when an activity response cannot be parsed.
func FallbackActivity() Activity {
	return Activity{
		Title:       "Team Collaboration Activity",
		Duration:    "15-20 minutes",
		Description: "An activity to strengthen team collaboration and communication.",
		Instructions: []string{
			"Form small groups of 2-3 people.",
			"Each group identifies one Scrum value they want to improve.",
			"Groups create a small action plan to embody this value better.",
			"Share insights with the full team.",
			"Vote on one team-wide improvement to implement.",
		},
	}
}
