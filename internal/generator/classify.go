package generator

// Classify selects the generation mode from the request shape. The decision
// is a pure function of which fields are set, not of their content, with
// precedence FollowUp > DetailsProvided > New.
func Classify(req GenerateRequest) Mode {
	if req.ChatSessionID != "" {
		if req.FunctionID == "" {
			return ModeInvalid
		}

		return ModeFollowUp
	}

	if req.Details != nil {
		return ModeDetailsProvided
	}

	return ModeNew
}
