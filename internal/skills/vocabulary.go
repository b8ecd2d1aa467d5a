// Package skills provides the closed skill vocabularies and the word-boundary
// matcher used to detect skills in free text.
package skills

// ResumeVocabulary is the canonical skill list scanned for in resume text.
// It is read-only after process start.
var ResumeVocabulary = []string{
	// Programming Languages
	"Python", "JavaScript", "Java", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	"Go", "Rust", "TypeScript", "Scala", "R", "MATLAB", "Perl",

	// Web Technologies
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "FastAPI",
	"HTML", "CSS", "SASS", "LESS", "Bootstrap", "Tailwind", "jQuery",
	"Next.js", "Nuxt.js", "Svelte", "Gatsby",

	// Mobile
	"React Native", "Flutter", "iOS", "Android", "Xamarin",

	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra",
	"Oracle", "SQLite", "DynamoDB", "Firebase", "Elasticsearch",

	// Cloud & DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "CI/CD",
	"Terraform", "Ansible", "Git", "GitHub", "GitLab", "Bitbucket",

	// Data Science & ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Keras",
	"Scikit-learn", "Pandas", "NumPy", "Matplotlib", "Seaborn",
	"NLP", "Computer Vision", "Data Analysis", "Statistics",

	// APIs & Architecture
	"REST API", "GraphQL", "Microservices", "Serverless", "WebSocket",

	// Testing
	"Jest", "Mocha", "Pytest", "Selenium", "Cypress", "JUnit",

	// Other
	"Agile", "Scrum", "JIRA", "Linux", "Bash", "PowerShell",
}

// JobVocabulary is the smaller skill list scanned for in job descriptions.
// It overlaps ResumeVocabulary but is intentionally kept as a separate list;
// the two vocabularies differ in membership and downstream recommendation
// quality depends on which list produced which set.
var JobVocabulary = []string{
	"Python", "JavaScript", "Java", "React", "Node.js", "Angular", "Vue",
	"Django", "Flask", "Spring", "SQL", "MongoDB", "AWS", "Docker",
	"Kubernetes", "Git", "Agile", "REST API", "Machine Learning",
}
