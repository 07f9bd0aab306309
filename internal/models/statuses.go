package models

type UserType string

const (
	UserTypeBrand      UserType = "brand"
	UserTypeInfluencer UserType = "influencer"
)

// Valid - true только для brand и influencer
func (t UserType) Valid() bool {
	return t == UserTypeBrand || t == UserTypeInfluencer
}
