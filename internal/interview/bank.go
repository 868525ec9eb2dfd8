package interview

import "resumelens/internal/types"

// questionBank maps role and difficulty to five curated questions each.
var questionBank = map[string]map[types.Difficulty][]string{
	"Frontend Developer": {
		types.DifficultyFriendly: {
			"Tell me about a recent project you built with React or any frontend framework.",
			"What is the difference between CSS Grid and Flexbox? When would you choose one over the other?",
			"Can you explain what a component lifecycle is in React?",
			"What tools do you use for debugging frontend issues?",
			"How do you make a website responsive?",
		},
		types.DifficultyStandard: {
			"Explain the Virtual DOM in React and why it improves performance.",
			"How would you optimize a React application that has slow rendering?",
			"Describe the difference between server-side rendering and client-side rendering.",
			"Walk me through how you would implement authentication in a single-page application.",
			"What are Web Vitals and how do you measure them?",
		},
		types.DifficultyStrict: {
			"Design a real-time collaborative text editor. Walk me through the architecture and conflict resolution.",
			"You have a React app with 10,000 list items and scroll lag. Diagnose and fix it with three strategies.",
			"Explain the event loop, microtask queue, and macrotask queue in JavaScript.",
			"Implement a custom hook that handles infinite scrolling with intersection observer and error recovery.",
			"Your client-side bundle is 4MB. Walk me through reducing it to under 200KB.",
		},
	},
	"Data Scientist": {
		types.DifficultyFriendly: {
			"What is the difference between supervised and unsupervised learning?",
			"Can you explain what overfitting is and how you prevent it?",
			"What Python libraries do you use most for data analysis?",
			"Walk me through how you would clean a messy dataset.",
			"What is the difference between classification and regression?",
		},
		types.DifficultyStandard: {
			"Explain the bias-variance tradeoff and how it affects model selection.",
			"You have a dataset with 95% class imbalance. How would you handle this?",
			"Compare Random Forest and Gradient Boosting. When would you choose each?",
			"Walk me through feature engineering for a customer churn prediction model.",
			"How do you validate a machine learning model beyond just accuracy?",
		},
		types.DifficultyStrict: {
			"Design an end-to-end ML pipeline for real-time fraud detection at 1M transactions per hour.",
			"Explain the mathematics behind backpropagation for a two-layer neural network.",
			"You deployed a model with 94% accuracy but stakeholders say it is useless. Diagnose it.",
			"Compare transformer architectures to RNNs for sequential data.",
			"Design an A/B testing framework for a recommendation engine with network effects.",
		},
	},
	"Backend Developer": {
		types.DifficultyFriendly: {
			"What is a REST API and how does it differ from GraphQL?",
			"Explain the difference between SQL and NoSQL databases.",
			"What is middleware in the context of web servers?",
			"How do you handle errors in a backend application?",
			"Describe a backend project you have worked on.",
		},
		types.DifficultyStandard: {
			"Design a rate limiting system for an API. What algorithms would you consider?",
			"Explain database indexing. When can indexes hurt performance?",
			"How would you implement caching in a backend service?",
			"Walk me through authentication with JWT tokens and refresh tokens.",
			"What is the N+1 query problem and how do you solve it?",
		},
		types.DifficultyStrict: {
			"Design a distributed message queue with exactly-once delivery guarantees.",
			"API handles 50K req/s but P99 latency spiked to 2s. Walk me through debugging.",
			"Implement a distributed lock. Compare Redlock and ZooKeeper approaches.",
			"Design the backend for a ride-sharing app including geospatial indexing.",
			"Migrate 500GB from PostgreSQL to DynamoDB with zero downtime. Your strategy?",
		},
	},
	"Full Stack Developer": {
		types.DifficultyFriendly: {
			"What does full stack development mean to you?",
			"Describe a project where you worked on both frontend and backend.",
			"What is your preferred tech stack and why?",
			"How do you decide what logic goes on the frontend vs backend?",
			"How do you stay up to date with new technologies?",
		},
		types.DifficultyStandard: {
			"Walk me through deploying a full-stack application to production.",
			"How would you implement real-time notifications in a web application?",
			"Explain WebSockets vs Server-Sent Events vs long polling.",
			"Design the data model and API for a simple e-commerce platform.",
			"How do you handle file uploads securely in a web application?",
		},
		types.DifficultyStrict: {
			"Design a real-time analytics dashboard ingesting 100K events/sec with live charts.",
			"Your full-stack app has a memory leak crashing the server every 6 hours. Debug it.",
			"Implement end-to-end type safety from database to UI.",
			"Design a multi-tenant SaaS platform with role-based access and tenant isolation.",
			"Architect an offline-first PWA with conflict resolution for multi-device sync.",
		},
	},
}

// bankRoles preserves presentation order for Roles.
var bankRoles = []string{
	"Frontend Developer",
	"Data Scientist",
	"Backend Developer",
	"Full Stack Developer",
}

// Difficulties lists the supported grading modes in increasing strictness.
func Difficulties() []types.Difficulty {
	return []types.Difficulty{
		types.DifficultyFriendly,
		types.DifficultyStandard,
		types.DifficultyStrict,
	}
}

// Roles lists the roles with a curated question set.
func Roles() []string {
	return append([]string{}, bankRoles...)
}

// Questions returns the question set for a role and difficulty, falling back
// to the Frontend Developer Standard set for unknown keys.
func Questions(role string, difficulty types.Difficulty) []string {
	if byDifficulty, ok := questionBank[role]; ok {
		if qs, ok := byDifficulty[difficulty]; ok {
			return qs
		}
	}
	return questionBank["Frontend Developer"][types.DifficultyStandard]
}
