package refdata

// PayrollProviders returns the known payroll-processor names, already in
// normalized form (lowercase, alphanumeric only) so the linkage gate can
// substring-match them against normalized bank descriptors.
func PayrollProviders() []string {
	return []string{
		"adp",
		"ceridian",
		"dayforce",
		"paychex",
		"payworks",
		"wagepoint",
		"gusto",
	}
}

// HighInfrastructureRoles returns lowercase job-title terms that imply heavy
// physical or industrial infrastructure. A role containing one of these terms
// cannot plausibly operate out of a residentially zoned address.
func HighInfrastructureRoles() []string {
	return []string{
		"warehouse",
		"forklift",
		"machinist",
		"millwright",
		"welder",
		"assembly line",
		"heavy equipment",
		"plant operator",
	}
}
