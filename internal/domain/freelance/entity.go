package freelance

import "time"

type Availability string

const (
	AvailabilityAvailable    Availability = "AVAILABLE"
	AvailabilityBusy         Availability = "BUSY"
	AvailabilityNotAvailable Availability = "NOT_AVAILABLE"
)

var Availabilities = []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilityNotAvailable}

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityNotAvailable:
		return true
	}
	return false
}

type Platform string

const (
	PlatformLinkedIn  Platform = "LINKEDIN"
	PlatformGitHub    Platform = "GITHUB"
	PlatformPortfolio Platform = "PORTFOLIO"
	PlatformBehance   Platform = "BEHANCE"
	PlatformDribbble  Platform = "DRIBBBLE"
	PlatformTwitter   Platform = "TWITTER"
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformOther     Platform = "OTHER"
)

var Platforms = []Platform{
	PlatformLinkedIn,
	PlatformGitHub,
	PlatformPortfolio,
	PlatformBehance,
	PlatformDribbble,
	PlatformTwitter,
	PlatformInstagram,
	PlatformOther,
}

func (p Platform) IsValid() bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// Profile is a freelancer's directory record. Optional attributes are nil when unset.
type Profile struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Title        string
	Description  *string
	Location     *string
	Availability Availability
	HourlyRate   *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Profile) IsAvailable() bool {
	return p.Availability == AvailabilityAvailable
}

type Link struct {
	ID          string
	FreelanceID string
	Platform    Platform
	URL         string
	Title       *string
}
