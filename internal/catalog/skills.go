package catalog

import "jobportal-engine/internal/domain"

var skills = []domain.Skill{
	{Value: "React", Label: "React"},
	{Value: "JavaScript", Label: "JavaScript"},
	{Value: "HTML", Label: "HTML"},
	{Value: "CSS", Label: "CSS"},
	{Value: "Python", Label: "Python"},
	{Value: "Java", Label: "Java"},
	{Value: "C++", Label: "C++"},
	{Value: "Node.js", Label: "Node.js"},
	{Value: "Angular", Label: "Angular"},
	{Value: "Vue.js", Label: "Vue.js"},
	{Value: "TypeScript", Label: "TypeScript"},
	{Value: "Ruby", Label: "Ruby"},
	{Value: "PHP", Label: "PHP"},
	{Value: "SQL", Label: "SQL"},
	{Value: "NoSQL", Label: "NoSQL"},
	{Value: "MongoDB", Label: "MongoDB"},
	{Value: "MySQL", Label: "MySQL"},
	{Value: "PostgreSQL", Label: "PostgreSQL"},
	{Value: "Django", Label: "Django"},
	{Value: "Flask", Label: "Flask"},
	{Value: "Spring Boot", Label: "Spring Boot"},
	{Value: "Express.js", Label: "Express.js"},
	{Value: "Kotlin", Label: "Kotlin"},
	{Value: "Swift", Label: "Swift"},
	{Value: "Git", Label: "Git"},
	{Value: "Docker", Label: "Docker"},
	{Value: "Kubernetes", Label: "Kubernetes"},
	{Value: "AWS", Label: "AWS"},
	{Value: "Azure", Label: "Azure"},
	{Value: "GCP", Label: "GCP"},
	{Value: "REST APIs", Label: "REST APIs"},
	{Value: "GraphQL", Label: "GraphQL"},
	{Value: "Redux", Label: "Redux"},
	{Value: "MobX", Label: "MobX"},
	{Value: "Webpack", Label: "Webpack"},
	{Value: "Babel", Label: "Babel"},
	{Value: "Jenkins", Label: "Jenkins"},
	{Value: "CI/CD", Label: "CI/CD"},
	{Value: "Agile", Label: "Agile"},
	{Value: "Scrum", Label: "Scrum"},
	{Value: "TDD (Test-Driven Development)", Label: "TDD"},
	{Value: "Unit Testing", Label: "Unit Testing"},
	{Value: "Integration Testing", Label: "Integration Testing"},
	{Value: "UI/UX Design", Label: "UI/UX Design"},
	{Value: "Figma", Label: "Figma"},
	{Value: "Sketch", Label: "Sketch"},
	{Value: "Adobe XD", Label: "Adobe XD"},
	{Value: "Photoshop", Label: "Photoshop"},
	{Value: "Illustrator", Label: "Illustrator"},
	{Value: "Blockchain", Label: "Blockchain"},
	{Value: "Solidity", Label: "Solidity"},
	{Value: "Machine Learning", Label: "Machine Learning"},
	{Value: "Data Science", Label: "Data Science"},
	{Value: "Data Analysis", Label: "Data Analysis"},
	{Value: "Big Data", Label: "Big Data"},
	{Value: "Artificial Intelligence", Label: "Artificial Intelligence"},
	{Value: "TensorFlow", Label: "TensorFlow"},
	{Value: "PyTorch", Label: "PyTorch"},
	{Value: "Natural Language Processing (NLP)", Label: "NLP"},
	{Value: "Computer Vision", Label: "Computer Vision"},
}

var skillSet = func() map[string]bool {
	m := make(map[string]bool, len(skills))
	for _, s := range skills {
		m[s.Value] = true
	}
	return m
}()

// Skills returns the skill vocabulary in display order.
func Skills() []domain.Skill {
	return append([]domain.Skill(nil), skills...)
}

// IsSkill reports whether v is a value of the skill vocabulary.
func IsSkill(v string) bool {
	return skillSet[v]
}
