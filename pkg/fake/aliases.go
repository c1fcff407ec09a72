package fake

// aliases maps common and beginner vocabulary onto concrete generator
// names. Resolution consults this table only after an exact match
// fails, and an alias only wins when its target exists on the live
// surface. Keys are lowercase.
var aliases = map[string]string{
	// Person
	"name":       "name",
	"full_name":  "name",
	"person":     "name",
	"first_name": "firstname",
	"last_name":  "lastname",
	"user":       "username",
	"user_name":  "username",

	// Contact
	"mail":         "email",
	"telephone":    "phone",
	"mobile":       "phone",
	"phone_number": "phone",

	// Address
	"street_address": "street",
	"zipcode":        "zip",
	"postal":         "zip",
	"postcode":       "zip",

	// Internet
	"website":     "url",
	"domain":      "domainname",
	"domain_name": "domainname",
	"ip":          "ipv4address",
	"ipv4":        "ipv4address",
	"ipv6":        "ipv6address",
	"mac_address": "macaddress",

	// Text
	"text":      "sentence",
	"words":     "sentence",
	"paragraphs": "paragraph",

	// Date/Time
	"time":      "date",
	"datetime":  "date",
	"date_time": "date",
	"timestamp": "date",

	// Numbers
	"integer":    "number",
	"random_int": "number",
	"float":      "price",
	"pyfloat":    "price",
	"decimal":    "price",
	"pydecimal":  "price",

	// Company
	"job":          "jobtitle",
	"job_title":    "jobtitle",
	"profession":   "jobtitle",
	"catch_phrase": "slogan",

	// Colors
	"color_name": "color",
	"hex_color":  "hexcolor",

	// Identifiers
	"guid":  "uuid",
	"uuid4": "uuid",

	// Boolean
	"boolean": "bool",
	"pybool":  "bool",
}
