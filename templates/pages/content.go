package pages

import "devnsecure_site_go/models"

var capabilities = []models.Capability{
	{
		Number:  "01",
		Name:    "Backend System Architecture",
		Problem: "Most systems fail not because of bad code, but because of bad architectural decisions made too early.",
		Approach: []string{
			"Breaking the product into bounded domains",
			"Defining clear service responsibilities",
			"Choosing monolith vs modular vs distributed consciously",
			"Designing for observability, failure, and scale from day one",
		},
		Difference: []string{
			"No copy-paste architectures",
			"No 'microservices because it's cool'",
			"No framework-driven design",
			"We design systems, not just APIs",
		},
		Technologies: []string{"Java / Spring Boot", "Node.js", "REST / GraphQL", "Event-driven patterns"},
	},
	{
		Number:  "02",
		Name:    "Secure API & Authentication Engineering",
		Problem: "APIs are the largest attack surface of modern systems, yet most are protected with basic middleware and hope.",
		Approach: []string{
			"Explicit trust boundaries",
			"Role & permission modeling",
			"Token lifecycle control",
			"Rate limiting & abuse protection",
			"Audit-ready request tracking",
		},
		Difference: []string{
			"We design auth flows before writing controllers",
			"Every endpoint has a security intent",
			"We assume malicious behavior by default",
			"Security is embedded, not added later",
		},
		Technologies: []string{"OAuth 2.0", "JWT", "Session-based auth", "API gateways"},
	},
	{
		Number:  "03",
		Name:    "Database & Data Flow Engineering",
		Problem: "Slow queries, broken migrations, data inconsistency, and systems that collapse under growth.",
		Approach: []string{
			"Designing schemas from access patterns, not entities",
			"Choosing the right database for the job",
			"Planning migrations as first-class citizens",
			"Engineering read/write paths separately",
		},
		Difference: []string{
			"No 'MongoDB everywhere'",
			"No premature optimization",
			"No ignoring data growth curves",
			"Your data layer remains predictable under pressure",
		},
		Technologies: []string{"PostgreSQL", "MongoDB", "Redis", "Query optimization"},
	},
	{
		Number:  "04",
		Name:    "Backend Security & Hardening",
		Problem: "Security breaches don't come from Hollywood hacks. They come from small oversights.",
		Approach: []string{
			"Threat modeling critical flows",
			"Eliminating insecure defaults",
			"Protecting sensitive data paths",
			"Enforcing least-privilege everywhere",
			"Logging security-relevant events",
		},
		Difference: []string{
			"We don't just 'follow OWASP', we apply it contextually",
			"Security decisions are documented and intentional",
			"Systems remain secure without becoming unusable",
		},
		Technologies: []string{"OWASP Top 10 mitigation", "Secure secrets handling", "Encryption strategies", "Audit logs"},
	},
}

var architectureLayers = []models.ArchitectureLayer{
	{Name: "API Layer", Description: "REST/GraphQL endpoints, rate limiting, request validation"},
	{Name: "Auth & Access Control", Description: "Authentication, authorization, RBAC, permission enforcement"},
	{Name: "Business Logic", Description: "Domain models, workflows, state management, data integrity"},
	{Name: "Data Layer", Description: "Database, caching, queries, transaction handling, encryption"},
	{Name: "Security & Observability", Description: "Logging, monitoring, alerting, audit trails, incident response"},
}

var securityPrinciples = []models.SecurityPrinciple{
	{
		Number:        "01",
		Title:         "Assume Breach Mentality",
		Reality:       "Perimeter security eventually fails.",
		Approach:      []string{"Internal services never fully trust each other", "Sensitive actions require explicit verification", "Critical paths are isolated and monitored", "We identify where the system cannot afford to fail"},
		Misconception: "They design for prevention, not containment.",
	},
	{
		Number:        "02",
		Title:         "Authentication ≠ Authorization",
		Reality:       "Identifying a user is easy. Controlling actions is hard.",
		Approach:      []string{"Explicit role & permission models", "Least-privilege by default", "Authorization enforced at multiple layers", "Should this action be allowed right now?"},
		Misconception: "They confuse identity with permission.",
	},
	{
		Number:        "03",
		Title:         "Data Protection By Design",
		Reality:       "Most breaches expose data, not servers.",
		Approach:      []string{"Data isolated by purpose", "Encryption where it matters", "Secrets never casually accessible", "Data is treated as toxic unless proven safe"},
		Misconception: "Encrypting everything, controlling nothing.",
	},
	{
		Number:        "04",
		Title:         "Observability Is A Security Tool",
		Reality:       "Attacks leave traces before damage.",
		Approach:      []string{"Security-relevant events logged deliberately", "Auth failures & anomalies tracked", "Logs designed for investigation", "Early detection requires intentional monitoring"},
		Misconception: "Logging for debugging, not response.",
	},
	{
		Number:        "05",
		Title:         "Failure-Resistant System Design",
		Reality:       "Failures become attack vectors.",
		Approach:      []string{"Intentional rate limiting", "Safe degradation", "Critical flows remain protected", "Under load, systems become more restrictive, not weaker"},
		Misconception: "Testing only happy paths.",
	},
}

var securityPractices = []string{
	"OWASP Top 10 (contextual)",
	"Secure secrets handling",
	"Input validation",
	"Token lifecycle control",
	"Abuse & rate-limit protection",
	"Audit logging",
}

var technologies = []models.Technology{
	{Name: "Java", Category: "Backend"},
	{Name: "Spring Boot", Category: "Framework"},
	{Name: "Node.js", Category: "Backend"},
	{Name: "PostgreSQL", Category: "Database"},
	{Name: "MongoDB", Category: "Database"},
	{Name: "Redis", Category: "Cache"},
	{Name: "Docker", Category: "Infrastructure"},
	{Name: "Kubernetes", Category: "Orchestration"},
}

var processPhases = []models.ProcessPhase{
	{
		Number: "01", Title: "System & Threat Discovery", Subtitle: "(Nothing is built here)", Focus: "What must be protected",
		Activities:  []string{"Map business goals → system responsibility", "Identify critical data & failure points", "Define trust boundaries", "Make threat assumptions explicit"},
		Gates:       []string{"Critical vs non-critical", "Secure-by-default paths", "Safe degradation paths"},
		RiskRemoved: "Building the wrong system efficiently.",
	},
	{
		Number: "02", Title: "Architecture Blueprint", Subtitle: "(Bias-free design)", Focus: "Structural clarity before code",
		Activities:  []string{"Define system components", "Clarify data ownership", "Sketch API contracts", "Lock monolith vs modular"},
		Gates:       []string{"Service boundaries", "Communication patterns", "Data access rules"},
		RiskRemoved: `Unscalable architecture hidden behind "working code".`,
	},
	{
		Number: "03", Title: "Secure Implementation", Subtitle: "(Discipline over speed)", Focus: "Predictable, enforceable behavior",
		Activities:  []string{"Code follows architecture", "Security rules enforced explicitly", "Auth & authorization designed consciously", "Error paths treated as first-class"},
		Gates:       []string{"Rule enforcement strictness", "Where security lives in code", "Allowed vs blocked behavior"},
		RiskRemoved: "Systems that work but can't be trusted.",
	},
	{
		Number: "04", Title: "Validation & Hardening", Subtitle: "(Intentional discomfort)", Focus: "Behavior under stress & misuse",
		Activities:  []string{"Test failure scenarios", "Validate edge cases", "Challenge security assumptions", "Verify logs & observability"},
		Gates:       []string{"Failure behavior", "Visible vs silent events", "Human alert thresholds"},
		RiskRemoved: "Surprises in production.",
	},
	{
		Number: "05", Title: "Deployment Readiness", Subtitle: "(Exposure without fragility)", Focus: "Operational safety",
		Activities:  []string{"Harden configuration", "Isolate secrets", "Review deployment assumptions", "Validate rollback & recovery"},
		Gates:       []string{"Failure response", "Recovery speed", "Notification paths"},
		RiskRemoved: "Fragile production systems.",
	},
}

var serviceAreas = []models.ServiceArea{
	{
		ID: "backend", Number: "01", Title: "Backend Systems Engineering",
		Summary: "Production-ready backend systems designed for scale, correctness, and longevity.",
		Capabilities: []string{
			"REST API development", "Business logic & workflow design", "Authentication & authorization systems",
			"Payment & subscription systems", "Scalable backend architecture", "Third-party API integrations",
			"Backend performance optimization", "Legacy backend refactoring",
		},
		Technologies: []string{"Java/Spring Boot", "Node.js", "Express", "REST"},
		Note:         "Best for startups, SaaS platforms, internal tools and enterprise systems.",
	},
	{
		ID: "database", Number: "02", Title: "Database & Data Flow Engineering",
		Summary: "Reliable systems are built on predictable data behavior.",
		Capabilities: []string{
			"Database architecture & schema design", "SQL & NoSQL database setup", "Query optimization & indexing",
			"Data migration & transformation", "Transaction & data integrity handling", "Backup, recovery & disaster planning",
			"Database scalability & monitoring", "Data pipeline design",
		},
		Technologies: []string{"PostgreSQL", "MySQL", "MongoDB", "Redis"},
		Note:         "Data models are designed from access patterns, not assumptions.",
	},
	{
		ID: "security", Number: "03", Title: "Backend Security & Hardening",
		Summary: "Security is engineered into the system, not added later.",
		Capabilities: []string{
			"Secure authentication systems (JWT, RBAC)", "API security hardening", "Data encryption & protection",
			"Payment security best practices", "Vulnerability assessment & remediation", "Secure configuration & environment setup",
			"Logging, monitoring & audit trails", "Compliance-ready backend practices",
		},
		Note: "Focused on long-term trust, privacy, and system resilience.",
	},
}

var strengths = []string{
	"Backend-first expertise",
	"Strong database fundamentals",
	"Security-focused development",
	"Clean, maintainable code",
	"Transparent communication",
	"Scalable & future-ready systems",
}

var projects = []models.Project{
	{
		Name: "Event-Driven Notification System", SystemType: "EVENT-DRIVEN ARCHITECTURE",
		EngineeringFocus: []string{"Event producers & consumers", "Message reliability", "Decoupled services"},
		Description:      "Real-time notification system designed around asynchronous event flows.",
		Concepts:         "Event queues, async processing, fault tolerance",
		Challenge:        "Ensures reliable event delivery and service decoupling at scale",
	},
	{
		Name: "Subscription Billing System", SystemType: "SAAS BILLING ENGINE",
		EngineeringFocus: []string{"Billing cycles", "Idempotent transactions", "Failure handling"},
		Description:      "Automated subscription billing system handling recurring payments and lifecycle events.",
		Concepts:         "Recurring payments, state machines, data integrity",
		Challenge:        "Maintains payment integrity and handles failure scenarios gracefully",
	},
	{
		Name: "Subscription Tracker", SystemType: "FINANCIAL TRACKING SYSTEM",
		EngineeringFocus: []string{"Data modeling", "Scheduled jobs", "Alerting logic"},
		Description:      "Tracks and manages user subscriptions with renewal alerts and cost visibility.",
		Concepts:         "Cron workflows, financial data accuracy",
		Challenge:        "Ensures accurate tracking and timely alerts for subscription lifecycle events",
	},
	{
		Name: "Payment Gateway Engine", SystemType: "PAYMENT INFRASTRUCTURE",
		EngineeringFocus: []string{"Secure payment flows", "Transaction verification", "Failure rollback"},
		Description:      "Backend payment engine handling secure transaction processing and validation.",
		Concepts:         "Payment security, idempotency, API validation",
		Challenge:        "Provides secure, idempotent payment processing with automatic rollback",
	},
	{
		Name: "Sahayak", SystemType: "SERVICE PLATFORM",
		EngineeringFocus: []string{"Backend APIs", "Role-based access", "Scalable architecture"},
		Description:      "A platform designed to connect users with assistance services efficiently.",
		Concepts:         "RBAC, modular backend design",
		Challenge:        "Scales horizontally while maintaining strict access control",
	},
	{
		Name: "Real-Estate Platform", SystemType: "DATA-DRIVEN PLATFORM",
		EngineeringFocus: []string{"Complex data models", "Search & filtering", "Secure data access"},
		Description:      "Property listing and management backend with structured data handling.",
		Concepts:         "Relational modeling, indexed search",
		Challenge:        "Models complex relationships and optimizes for fast, filtered searches",
	},
	{
		Name: "NearMe", SystemType: "HYPERLOCAL PLATFORM",
		EngineeringFocus: []string{"Geospatial queries", "High-read traffic handling", "Low-latency APIs"},
		Description:      "Location-based discovery system for nearby services and businesses.",
		Concepts:         "Location indexing, scalable read paths",
		Challenge:        "Delivers location-based results with sub-100ms latency at scale",
	},
	{
		Name: "AlphaEdge", SystemType: "ANALYTICS PLATFORM",
		EngineeringFocus: []string{"Data pipelines", "Aggregation logic", "Performance tuning"},
		Description:      "Analytics-driven system focused on data processing and insight generation.",
		Concepts:         "Analytics processing, system optimization",
		Challenge:        "Processes massive datasets for real-time analytical insights",
	},
}
