package template

// Built-in task documents for the code writing workflow.
const (
	// RequirementsDoc guides the requirements gathering step.
	RequirementsDoc = `# Requirements Analysis

- Gather all functional requirements
- Identify constraints and edge cases
- Clarify input/output specifications
- Note dependencies and prerequisites`

	// DesignDoc guides the solution design step.
	DesignDoc = `# Design Phase

- Architect the solution structure
- Plan algorithms and data flow
- Define interfaces and modules
- Consider error handling`

	// ImplementationDoc guides the implementation step.
	ImplementationDoc = `# Code Implementation

- Write clean, readable code
- Follow language best practices
- Add meaningful comments
- Handle exceptions properly`

	// TestingDoc guides the test and review step.
	TestingDoc = `# Testing and Review

- Write unit tests for key functions
- Test edge cases and error conditions
- Review code for bugs and optimization
- Suggest improvements`
)
