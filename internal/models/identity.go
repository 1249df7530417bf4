package models

// Applicant is the session-scoped applicant identity. It is not validated
// against any credential store; the email is the filter key for "my
// applications".
type Applicant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminAccount is the persisted administrator singleton. The password is
// stored and compared in clear text; the store is device-local.
type AdminAccount struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
