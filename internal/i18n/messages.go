package i18n

// User-facing messages, both languages. The Malayalam renderings come from
// the production UI copy.
var (
	MsgFillRequiredFields = LocalizedText{
		EN: "Please fill all required fields",
		ML: "ദയവായി ആവശ്യമായ എല്ലാ വിവരങ്ങളും നൽകുക",
	}
	MsgInvalidAmount = LocalizedText{
		EN: "Please enter a valid amount",
		ML: "ദയവായി സാധുവായ തുക നൽകുക",
	}
	MsgEnterName = LocalizedText{
		EN: "Please enter your name",
		ML: "ദയവായി നിങ്ങളുടെ പേര് നൽകുക",
	}
	MsgInvalidPhone = LocalizedText{
		EN: "Please enter a valid 10 digit mobile number",
		ML: "ദയവായി സാധുവായ 10 അക്ക മൊബൈൽ നമ്പർ നൽകുക",
	}
	MsgInvalidEmail = LocalizedText{
		EN: "Please enter a valid email address",
		ML: "ദയവായി സാധുവായ ഇമെയിൽ വിലാസം നൽകുക",
	}
	MsgTargetReached = LocalizedText{
		EN: "This campaign has already reached its target.",
		ML: "ഈ കാമ്പെയ്ൻ ഇതിനകം ലക്ഷ്യം നേടിയിട്ടുണ്ട്.",
	}
	MsgPaymentCancelled = LocalizedText{
		EN: "Payment was cancelled or failed",
		ML: "പേയ്മെന്റ് റദ്ദാക്കുകയോ പരാജയപ്പെടുകയോ ചെയ്തു",
	}
	MsgPaymentFailed = LocalizedText{
		EN: "Payment failed. Please try again.",
		ML: "പേയ്മെന്റ് പരാജയപ്പെട്ടു. ദയവായി വീണ്ടും ശ്രമിക്കുക.",
	}
	MsgVerificationFailed = LocalizedText{
		EN: "Payment verification failed. Please contact support if the amount was deducted.",
		ML: "പേയ്മെന്റ് പരിശോധന പരാജയപ്പെട്ടു. തുക ഈടാക്കിയിട്ടുണ്ടെങ്കിൽ ദയവായി ബന്ധപ്പെടുക.",
	}
	MsgDonationThanks = LocalizedText{
		EN: "Thank you for your donation!",
		ML: "നിങ്ങളുടെ സംഭാവനയ്ക്ക് നന്ദി!",
	}
	MsgCampaignNotFound = LocalizedText{
		EN: "Campaign Not Found",
		ML: "കാമ്പെയ്ൻ കണ്ടെത്തിയില്ല",
	}
	MsgNoDeadline = LocalizedText{
		EN: "No deadline",
		ML: "അവസാന തീയതിയില്ല",
	}
)
