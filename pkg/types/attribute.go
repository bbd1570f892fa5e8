package types

// AttributeDef names a known profile attribute and its display label.
// The attribute set is extensible: documents may carry keys beyond the
// built-in definitions.
type AttributeDef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Built-in attribute keys.
const (
	AttrPhone    = "phone"
	AttrEmail    = "email"
	AttrWebsite  = "website"
	AttrFacebook = "facebook"
	AttrTwitter  = "twitter"
	AttrAddress  = "address"
)

// BuiltInAttributes defines the attributes seeded on first attach.
var BuiltInAttributes = []AttributeDef{
	{AttrPhone, "Telefon"},
	{AttrEmail, "Email"},
	{AttrWebsite, "Website"},
	{AttrFacebook, "Facebook"},
	{AttrTwitter, "Twitter"},
	{AttrAddress, "Adresa poștală"},
}
