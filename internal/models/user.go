package models

import (
	"github.com/lib/pq"
)

// User - зарегистрированный пользователь. Ровно один из профилей заполнен.
type User struct {
	BaseModel
	Email          string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string   `gorm:"not null" json:"-"`
	UserType       UserType `gorm:"type:varchar(20);not null" json:"user_type"`
	FullName       string   `gorm:"not null" json:"full_name"`
	Phone          string   `gorm:"not null" json:"phone"`
	Location       string   `gorm:"not null" json:"location"`
	ProfilePicture *string  `json:"profile_picture,omitempty"`
	TermsAgreed    bool     `gorm:"not null" json:"terms_agreed"`

	// Связи
	InfluencerProfile *InfluencerProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"influencer_profile,omitempty"`
	BrandProfile      *BrandProfile      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"brand_profile,omitempty"`
}

type InfluencerProfile struct {
	BaseModel
	UserID          string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Username        string         `gorm:"not null" json:"username"`
	PrimaryPlatform pq.StringArray `gorm:"type:text[]" json:"primary_platform" swaggerignore:"true"`
	SocialLinks     pq.StringArray `gorm:"type:text[]" json:"social_links" swaggerignore:"true"`
	FollowerCount   int            `gorm:"not null" json:"follower_count"`
	Niche           string         `gorm:"not null" json:"niche"`
	Bio             string         `json:"bio"`
	Portfolio       *string        `json:"portfolio,omitempty"`
}

type BrandProfile struct {
	BaseModel
	UserID          string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BrandName       string         `gorm:"not null" json:"brand_name"`
	Website         string         `json:"website"`
	Industry        string         `gorm:"not null" json:"industry"`
	CompanySize     string         `json:"company_size"`
	BudgetRange     string         `json:"budget_range"`
	PreferredNiches pq.StringArray `gorm:"type:text[]" json:"preferred_niches" swaggerignore:"true"`
	BrandBio        string         `json:"brand_bio"`
}
