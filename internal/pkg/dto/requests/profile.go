package requests

type UpdateDoctorProfile struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=120"`
	Speciality string `json:"speciality"`
	HealthPlan string `json:"healthPlan"`
}

type UpdatePatientProfile struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=120"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	HealthPlan  string `json:"healthPlan"`
}

type UploadProfilePicture struct {
	ImageBase64   string `json:"imageBase64" validate:"required,base64"`
	FileExtension string `json:"fileExtension" validate:"required,oneof=.png .jpg .jpeg"`
}

type DoctorSearch struct {
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
	HealthPlan string `json:"healthPlan"`
}
