package questions

import "github.com/avikamggh/ai-interviewer/pkg/resume"

var englishCatalog = Catalog{
	General: []string{
		"Why are you interested in this type of role?",
		"What are your career goals for the next 5 years?",
		"How do you stay updated with new technologies?",
		"What motivates you in your work?",
		"Tell me about yourself and your background.",
		"What do you consider your greatest professional achievement?",
		"How do you handle work-life balance?",
		"What type of work environment do you prefer?",
		"Why are you looking for a new opportunity?",
		"What are your salary expectations?",
	},
	Behavioral: []string{
		"Tell me about a challenging project you worked on.",
		"How do you handle tight deadlines and pressure?",
		"Describe a time when you had to learn a new technology quickly.",
		"How do you approach problem-solving in your work?",
		"Tell me about a time you disagreed with a team member.",
		"Describe a situation where you had to debug a complex issue.",
		"How do you stay updated with new technologies?",
		"Tell me about a time you received constructive criticism.",
		"Describe your experience working in a team environment.",
		"How do you prioritize tasks when working on multiple projects?",
	},
	Technical: map[resume.Skill][]string{
		resume.SkillJavaScript: {
			"Can you explain what closures are in JavaScript?",
			"What is the difference between let, const, and var?",
			"How do you handle asynchronous operations in JavaScript?",
			"Explain the concept of hoisting in JavaScript.",
			"What are arrow functions and how do they differ from regular functions?",
		},
		resume.SkillPython: {
			"What are decorators in Python and how do you use them?",
			"Explain the difference between lists and tuples in Python.",
			"How do you handle exceptions in Python?",
			"What is the Global Interpreter Lock (GIL) in Python?",
			"Explain list comprehensions in Python with examples.",
		},
		resume.SkillReact: {
			"What are React hooks and why are they useful?",
			"Explain the virtual DOM concept in React.",
			"How do you manage state in a React application?",
			"What is the difference between functional and class components?",
			"How do you handle side effects in React?",
		},
		resume.SkillNodeJS: {
			"What is the event loop in Node.js?",
			"How do you handle file operations in Node.js?",
			"Explain middleware in Express.js.",
			"What are streams in Node.js and when would you use them?",
			"How do you handle errors in Node.js applications?",
		},
		resume.SkillDatabase: {
			"What is the difference between SQL and NoSQL databases?",
			"Explain database normalization and its benefits.",
			"What are database indexes and how do they improve performance?",
			"How would you optimize a slow database query?",
			"Explain ACID properties in database transactions.",
		},
		resume.SkillFrontend: {
			"What is responsive web design and how do you implement it?",
			"Explain the box model in CSS.",
			"What are CSS preprocessors and their advantages?",
			"How do you ensure cross-browser compatibility?",
			"What is progressive web app (PWA)?",
		},
		resume.SkillBackend: {
			"What is RESTful API design and its principles?",
			"How do you handle authentication and authorization?",
			"Explain microservices architecture.",
			"What is caching and how do you implement it?",
			"How do you ensure API security?",
		},
	},
}
