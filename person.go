package docscout

// Role labels a person's position within a practice.
// At most one person per website carries RoleOwner.
type Role string

// Role values. The zero value means the role has not been assigned yet.
const (
	RoleUnset     Role = ""
	RoleOwner     Role = "Owner"
	RoleAssociate Role = "Associate"
)

// Field caps applied to extracted person records.
const (
	MaxBioLen       = 2000
	MaxEducationLen = 200
	MaxHometownWords = 3
)

// Person represents one doctor or staff member extracted from a website.
// Every field except Name may legitimately be empty; downstream CSV rows
// require a fixed column set, so absent values are empty strings, never
// omitted columns.
type Person struct {
	// Name is the canonical display name with titles (Dr., DDS, DMD, MS)
	// stripped.
	Name string `json:"name"`

	// Bio is free text cleaned of navigation boilerplate, capped at
	// MaxBioLen characters.
	Bio string `json:"bio"`

	// Age is derived from a graduation year, never directly stated.
	// Nil when unknown; when set it lies within [MinAge, MaxAge].
	Age *int `json:"age"`

	// Hometown is a short place name, at most MaxHometownWords words.
	Hometown string `json:"hometown"`

	// Education is free text capped at MaxEducationLen characters.
	Education string `json:"education"`

	// PhotoURL is an absolute URL or empty.
	PhotoURL string `json:"photo_url"`

	// Role is assigned once per website after reconciliation.
	Role Role `json:"role"`
}

// Validate returns an error if the person record cannot be kept.
func (p *Person) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "person name required")
	}
	if !IsValidName(p.Name) {
		return Errorf(EINVALID, "%q is not a plausible person name", p.Name)
	}
	return nil
}

// SamePerson reports whether two records refer to the same person under the
// name-equivalence relation: equal normalized names, two or more shared name
// tokens, or a shared last name with matching first initial.
func (p *Person) SamePerson(other *Person) bool {
	return SameName(p.Name, other.Name)
}
