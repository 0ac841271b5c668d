package study

import "github.com/vets2tech/onboard/internal/domain"

// DefaultCatalog returns the study-resource descriptions keyed by title.
// Immutable configuration, injected at construction; a translated catalog
// can be swapped in the same way as the quiz catalog.
func DefaultCatalog() map[string]domain.StudyResource {
	entries := []domain.StudyResource{
		// Cloud Application Development
		{
			Title:       "Cloud Development Bootcamp",
			Description: "This immersive bootcamp offers a step-by-step guide to building cloud-native applications. Learn key concepts like microservices architecture, containerization, and continuous deployment, using modern tools such as Docker and Kubernetes.",
			URL:         "https://www.codecademy.com/learn",
			Skills:      "Microservices, Docker, Kubernetes, DevOps pipelines",
		},
		{
			Title:       "Developing on AWS",
			Description: "This resource provides an in-depth introduction to designing, building, and deploying applications on Amazon Web Services (AWS). Learn essential AWS services like Lambda, DynamoDB, and API Gateway.",
			URL:         "https://aws.amazon.com/getting-started/",
			Skills:      "AWS Lambda, DynamoDB, API Gateway, Serverless architectures",
		},
		{
			Title:       "Microsoft Learn: App Development",
			Description: "Explore the world of cloud application development with Microsoft's free interactive learning platform. This course covers Azure App Services, Azure Functions, and CI/CD pipelines.",
			URL:         "https://learn.microsoft.com/en-us/training/",
			Skills:      "Azure App Services, Azure Functions, CI/CD, Cloud scaling",
		},
		{
			Title:       "Full-Stack Cloud Development",
			Description: "This specialization, offered by IBM on Coursera, teaches you how to develop full-stack cloud-based applications, covering front-end frameworks, server-side scripting, and database integration.",
			URL:         "https://www.coursera.org/specializations/ibm-cloud-application-development-foundations",
			Skills:      "Front-end frameworks, Server-side scripting, Database integration, Continuous delivery",
		},
		{
			Title:       "Google Cloud Application Development",
			Description: "Google Cloud's comprehensive learning platform offers tutorials, labs, and certifications to help you master cloud app development, including scalable backend systems and serverless functions.",
			URL:         "https://cloud.google.com/training",
			Skills:      "Google Cloud, Serverless functions, App Engine, Cloud SQL",
		},
		{
			Title:       "IBM Application Development",
			Description: "Dive into IBM's developer portal to learn about creating cloud-native applications using IBM Cloud services, including Watson AI and Kubernetes.",
			URL:         "https://developer.ibm.com",
			Skills:      "IBM Cloud, Watson AI, Kubernetes, Advanced cloud development",
		},

		// Cybersecurity Administration
		{
			Title:       "CompTIA Security+",
			Description: "CompTIA Security+ is an industry-recognized certification designed for entry-level professionals. This resource covers risk management, network security, and compliance.",
			URL:         "https://www.comptia.org/certifications/security",
			Skills:      "Network security, Risk management, Compliance, Threat prevention",
		},
		{
			Title:       "Introduction to Cybersecurity",
			Description: "Offered by Cisco Networking Academy, this beginner-friendly course introduces the core concepts of cybersecurity, including types of attacks, threat detection, and data protection strategies.",
			URL:         "https://www.netacad.com/courses/cybersecurity",
			Skills:      "Threat detection, Data protection, Basic cyber attacks, Cisco tools",
		},
		{
			Title:       "Certified Ethical Hacker",
			Description: "The CEH certification from EC-Council is a globally respected credential that teaches ethical hacking techniques and methodologies to identify vulnerabilities and strengthen systems against cyberattacks.",
			URL:         "https://www.eccouncil.org/programs/certified-ethical-hacker-ceh/",
			Skills:      "Penetration testing, Vulnerability analysis, Network scanning, Ethical hacking",
		},
		{
			Title:       "Google Cybersecurity Training",
			Description: "This free training program from Google offers hands-on exercises and certification preparation for those interested in practical cybersecurity applications.",
			URL:         "https://grow.google/certificates/",
			Skills:      "Google security tools, System hardening, Network fundamentals, Cyber labs",
		},
		{
			Title:       "Stanford Advanced Cybersecurity",
			Description: "Offered by Stanford University, this advanced program explores cutting-edge practices in threat analysis, risk assessment, and data protection.",
			URL:         "https://online.stanford.edu/professional-education",
			Skills:      "Threat analysis, Risk assessment, Data protection, Advanced attack vectors",
		},
		{
			Title:       "IBM Cybersecurity Analyst",
			Description: "This professional certificate on Coursera provides in-depth knowledge of security intelligence, event management, incident response, and risk analysis.",
			URL:         "https://www.coursera.org/professional-certificates/ibm-cybersecurity-analyst",
			Skills:      "SIEM systems, Incident response, Security analytics, IBM security tools",
		},

		// Server & Cloud Applications
		{
			Title:       "AWS Certified Solutions Architect",
			Description: "This highly regarded certification by AWS equips you with the knowledge and skills to design, deploy, and operate highly available, cost-effective, and secure applications on AWS.",
			URL:         "https://aws.amazon.com/certification/certified-solutions-architect-associate/",
			Skills:      "AWS architecture, High availability, Cost optimization, Security best practices",
		},
		{
			Title:       "Microsoft Azure Fundamentals",
			Description: "Ideal for beginners, this certification offers a thorough introduction to Microsoft Azure services, covering cloud concepts, core Azure services, pricing, and security fundamentals.",
			URL:         "https://learn.microsoft.com/en-us/certifications/azure-fundamentals/",
			Skills:      "Azure basics, Cloud concepts, Azure security, Cost management",
		},
		{
			Title:       "Introduction to Kubernetes",
			Description: "This resource from Kubernetes.io introduces you to container orchestration, helping you manage and deploy containers across clusters effectively.",
			URL:         "https://kubernetes.io/docs/tutorials/",
			Skills:      "Container orchestration, Clusters, Pods & services, Deployment best practices",
		},
		{
			Title:       "Google Cloud Fundamentals",
			Description: "Learn the basics of Google Cloud Platform through interactive lessons and hands-on labs, covering cloud computing fundamentals, managing virtual machines, and leveraging Google Cloud's unique features.",
			URL:         "https://cloud.google.com/training",
			Skills:      "Compute Engine, VM management, GCP fundamentals, Scalability",
		},
		{
			Title:       "IBM Cloud Learn Hub",
			Description: "The IBM Cloud Learn Hub offers resources on app modernization, AI integration, Kubernetes, and hybrid cloud setups.",
			URL:         "https://www.ibm.com/cloud/learn",
			Skills:      "IBM Cloud, App modernization, Hybrid cloud, AI integration",
		},
		{
			Title:       "Cloud Academy",
			Description: "Cloud Academy offers interactive quizzes, hands-on labs, and comprehensive courses to help you become a cloud expert across AWS, Azure, Google Cloud, and Kubernetes.",
			URL:         "https://cloudacademy.com",
			Skills:      "AWS, Azure, Google Cloud, Kubernetes, Continuous learning",
		},
	}

	catalog := make(map[string]domain.StudyResource, len(entries))
	for _, e := range entries {
		catalog[e.Title] = e
	}
	return catalog
}
