package extraction

// ExtractInput carries the parsed CSV content handed to the agent.
type ExtractInput struct {
	// CSV is the raw tabular text, header row included.
	CSV string
}

// ExtractOutput is the agent's answer.
type ExtractOutput struct {
	// Products is ordered as extracted and contains no duplicates and no
	// empty strings. May be empty when the input has no recognizable
	// products or the model answer was unusable.
	Products []string
}
