package model

// Account roles. Operators run their club's events; coaches supervise lanes
// and enter final times; admin is cross-club.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleCoach    = "coach"
)

// User — users table. Operator, coach and admin accounts.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'operator'"   json:"role"`
	ClubID       string `gorm:"type:uuid;not null"                             json:"club_id"`
	SoftDeleteModel

	Club *Club `gorm:"foreignKey:ClubID;references:ClubID" json:"club,omitempty"`
}

func (User) TableName() string { return "users" }
