package model

import "github.com/TTJ-s/qr-annujoom/internal/i18n"

// Category is the closed set of campaign categories the platform runs.
// The backend still transports these as free strings; unknown values parse
// to CategoryUnknown and render with the default card.
type Category string

const (
	CategoryGeneralCampaign Category = "General Campaign"
	CategoryGeneralFunding  Category = "General Funding"
	CategoryZakat           Category = "Zakat"
	CategoryOrphan          Category = "Orphan"
	CategoryWidow           Category = "Widow"
	CategoryGhuslMayyit     Category = "Ghusl Mayyit"
	CategoryUnknown         Category = ""
)

// ParseCategory normalises an upstream category string.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryGeneralCampaign, CategoryGeneralFunding, CategoryZakat,
		CategoryOrphan, CategoryWidow, CategoryGhuslMayyit:
		return Category(s)
	default:
		return CategoryUnknown
	}
}

const defaultCategoryImage = "/assets/images/general-campaign.jpg"

var categoryImages = map[Category]string{
	CategoryWidow:           "/assets/images/widow.jpg",
	CategoryGhuslMayyit:     "/assets/images/ghusal-mayyath.png",
	CategoryGeneralCampaign: "/assets/images/general-campaign.jpg",
	CategoryGeneralFunding:  "/assets/images/general-funding.jpg",
	CategoryOrphan:          "/assets/images/orphan.jpg",
	CategoryZakat:           "/assets/images/zakat.jpg",
}

// Image returns the category card artwork.
func (c Category) Image() string {
	if img, ok := categoryImages[c]; ok {
		return img
	}
	return defaultCategoryImage
}

var defaultCategoryDescription = i18n.LocalizedText{
	EN: "Your contribution can change a life today.",
	ML: "നിങ്ങളുടെ സംഭാവന ഇന്ന് ഒരു ജീവിതം മാറ്റിമറിക്കും.",
}

var categoryDescriptions = map[Category]i18n.LocalizedText{
	CategoryGeneralCampaign: {
		EN: "Donate for community initiatives and development",
		ML: "കമ്മ്യൂണിറ്റി സംരംഭങ്ങൾക്കും വികസനത്തിനും സംഭാവന നൽകുക",
	},
	CategoryGeneralFunding: {
		EN: "Support overall social and welfare activities",
		ML: "മൊത്തത്തിലുള്ള സാമൂഹികവും ക്ഷേമപ്രവർത്തനങ്ങളും പിന്തുണയ്ക്കുക",
	},
	CategoryZakat: {
		EN: "Fulfill religious duty by helping eligible people",
		ML: "യോഗ്യരായവരെ സഹായിച്ചുകൊണ്ട് മതപരമായ കടമ നിറവേറ്റുക",
	},
	CategoryOrphan: {
		EN: "Help children live, learn & grow",
		ML: "കുട്ടികളെ ജീവിക്കാനും പഠിക്കാനും വളരാനും സഹായിക്കുക",
	},
	CategoryWidow: {
		EN: "Support widows with essential needs",
		ML: "അനിവാര്യമായ ആവശ്യങ്ങളിൽ വിധവകളെ പിന്തുണയ്ക്കുക",
	},
	CategoryGhuslMayyit: {
		EN: "Provide burial support for needy families",
		ML: "ആവശ്യമുള്ള കുടുംബങ്ങൾക്ക് ശവസംസ്കാര സഹായം നൽകുക",
	},
}

// Description returns the bilingual category card subtitle.
func (c Category) Description() i18n.LocalizedText {
	if d, ok := categoryDescriptions[c]; ok {
		return d
	}
	return defaultCategoryDescription
}
