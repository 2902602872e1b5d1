package models

// Capability is one engineered capability on the landing page
type Capability struct {
	Number       string
	Name         string
	Problem      string
	Approach     []string
	Difference   []string
	Technologies []string
}

// SecurityPrinciple is one entry of the security timeline
type SecurityPrinciple struct {
	Number        string
	Title         string
	Reality       string
	Approach      []string
	Misconception string
}

// ProcessPhase is one step of the delivery process
type ProcessPhase struct {
	Number      string
	Title       string
	Subtitle    string
	Focus       string
	Activities  []string
	Gates       []string
	RiskRemoved string
}

// ArchitectureLayer is one box of the layered architecture diagram
type ArchitectureLayer struct {
	Name        string
	Description string
}

// Technology is a tech stack entry
type Technology struct {
	Name     string
	Category string
}

// ServiceArea is a numbered section of the services page
type ServiceArea struct {
	ID           string
	Number       string
	Title        string
	Summary      string
	Capabilities []string
	Technologies []string
	Note         string
}

// Project is a portfolio entry
type Project struct {
	Name             string
	SystemType       string
	EngineeringFocus []string
	Description      string
	Concepts         string
	Challenge        string
}
