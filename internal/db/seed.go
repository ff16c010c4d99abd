package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/caregivers-platform/internal/models"
	"github.com/BruksfildServices01/caregivers-platform/internal/security"
)

const seedPassword = "caregivers"

type seedCaregiver struct {
	user models.User
	cg   models.Caregiver
}

type seedMember struct {
	user models.User
	m    models.Member
	addr models.Address
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed inserts the demonstration dataset used by the reporting command.
// It does nothing when the user table already has rows and reports
// whether anything was inserted.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := security.HashPassword(seedPassword)
	if err != nil {
		return false, err
	}

	caregivers := []seedCaregiver{
		{
			user: models.User{Email: "arman.armanov@example.kz", GivenName: "Arman", Surname: "Armanov", City: "Astana", PhoneNumber: "+77011112233", ProfileDescription: "Babysitter with five years of experience."},
			cg:   models.Caregiver{Gender: "male", CaregivingType: "babysitter", HourlyRate: 9.99},
		},
		{
			user: models.User{Email: "dana.seitkali@example.kz", GivenName: "Dana", Surname: "Seitkali", City: "Almaty", PhoneNumber: "+77022223344", ProfileDescription: "Certified nurse assistant."},
			cg:   models.Caregiver{Gender: "female", CaregivingType: "elderly care", HourlyRate: 10.00},
		},
		{
			user: models.User{Email: "yerlan.nurlanov@example.kz", GivenName: "Yerlan", Surname: "Nurlanov", City: "Astana", PhoneNumber: "+77033334455", ProfileDescription: "Former primary school tutor."},
			cg:   models.Caregiver{Gender: "male", CaregivingType: "babysitter", HourlyRate: 20.00},
		},
		{
			user: models.User{Email: "aigerim.sadykova@example.kz", GivenName: "Aigerim", Surname: "Sadykova", City: "Astana", PhoneNumber: "+77044445566", ProfileDescription: "Loves board games and outdoor play."},
			cg:   models.Caregiver{Gender: "female", CaregivingType: "playmate", HourlyRate: 15.50},
		},
	}

	members := []seedMember{
		{
			user: models.User{Email: "amina.aminova@example.kz", GivenName: "Amina", Surname: "Aminova", City: "Astana", PhoneNumber: "+77055556677", ProfileDescription: "Mother of two."},
			m:    models.Member{HouseRules: "No smoking inside.", DependentDescription: "Two boys aged 4 and 7."},
			addr: models.Address{HouseNumber: "12", Street: "Turan", Town: "Astana"},
		},
		{
			user: models.User{Email: "bolat.bekov@example.kz", GivenName: "Bolat", Surname: "Bekov", City: "Astana", PhoneNumber: "+77066667788", ProfileDescription: "Looking after my father."},
			m:    models.Member{HouseRules: "No pets allowed.", DependentDescription: "Father, 82, limited mobility."},
			addr: models.Address{HouseNumber: "5", Street: "Kabanbay Batyr", Town: "Astana"},
		},
		{
			user: models.User{Email: "saule.omarova@example.kz", GivenName: "Saule", Surname: "Omarova", City: "Astana", PhoneNumber: "+77077778899", ProfileDescription: "Daughter caring for her mother."},
			m:    models.Member{HouseRules: "No pets. Shoes off at the door.", DependentDescription: "Mother, 76, early dementia."},
			addr: models.Address{HouseNumber: "48", Street: "Mangilik El", Town: "Astana"},
		},
		{
			user: models.User{Email: "timur.zhaksylykov@example.kz", GivenName: "Timur", Surname: "Zhaksylykov", City: "Almaty", PhoneNumber: "+77088889900", ProfileDescription: "Working parent."},
			m:    models.Member{HouseRules: "Pets welcome.", DependentDescription: "Daughter aged 3."},
			addr: models.Address{HouseNumber: "101", Street: "Abay", Town: "Almaty"},
		},
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range caregivers {
			s := &caregivers[i]
			s.user.Password = hash
			if err := tx.Create(&s.user).Error; err != nil {
				return fmt.Errorf("seed caregiver user %s: %w", s.user.Email, err)
			}
			s.cg.CaregiverUserID = s.user.UserID
			if err := tx.Omit(clause.Associations).Create(&s.cg).Error; err != nil {
				return fmt.Errorf("seed caregiver %s: %w", s.user.Email, err)
			}
		}

		for i := range members {
			s := &members[i]
			s.user.Password = hash
			if err := tx.Create(&s.user).Error; err != nil {
				return fmt.Errorf("seed member user %s: %w", s.user.Email, err)
			}
			s.m.MemberUserID = s.user.UserID
			if err := tx.Omit(clause.Associations).Create(&s.m).Error; err != nil {
				return fmt.Errorf("seed member %s: %w", s.user.Email, err)
			}
			s.addr.MemberUserID = s.user.UserID
			if err := tx.Omit(clause.Associations).Create(&s.addr).Error; err != nil {
				return fmt.Errorf("seed address %s: %w", s.user.Email, err)
			}
		}

		arman, dana, yerlan, aigerim := caregivers[0].cg.CaregiverUserID, caregivers[1].cg.CaregiverUserID, caregivers[2].cg.CaregiverUserID, caregivers[3].cg.CaregiverUserID
		amina, bolat, saule, timur := members[0].m.MemberUserID, members[1].m.MemberUserID, members[2].m.MemberUserID, members[3].m.MemberUserID

		jobs := []models.Job{
			{MemberUserID: amina, RequiredCaregivingType: "babysitter", OtherRequirements: "Must be soft-spoken and patient.", DatePosted: day("2025-03-01")},
			{MemberUserID: amina, RequiredCaregivingType: "elderly care", OtherRequirements: "Night shifts twice a week.", DatePosted: day("2025-03-04")},
			{MemberUserID: saule, RequiredCaregivingType: "elderly care", OtherRequirements: "Calm and soft-spoken, dementia experience preferred.", DatePosted: day("2025-03-06")},
			{MemberUserID: timur, RequiredCaregivingType: "babysitter", OtherRequirements: "Weekday afternoons.", DatePosted: day("2025-03-08")},
			{MemberUserID: bolat, RequiredCaregivingType: "elderly care", OtherRequirements: "Help with daily walks.", DatePosted: day("2025-03-10")},
		}
		if err := tx.Omit(clause.Associations).Create(&jobs).Error; err != nil {
			return fmt.Errorf("seed jobs: %w", err)
		}

		applications := []models.JobApplication{
			{CaregiverUserID: arman, JobID: jobs[0].JobID, DateApplied: day("2025-03-02")},
			{CaregiverUserID: dana, JobID: jobs[2].JobID, DateApplied: day("2025-03-07")},
			{CaregiverUserID: yerlan, JobID: jobs[2].JobID, DateApplied: day("2025-03-09")},
			{CaregiverUserID: aigerim, JobID: jobs[4].JobID, DateApplied: day("2025-03-11")},
		}
		if err := tx.Omit(clause.Associations).Create(&applications).Error; err != nil {
			return fmt.Errorf("seed job applications: %w", err)
		}

		appointments := []models.Appointment{
			{CaregiverUserID: arman, MemberUserID: saule, AppointmentDate: day("2025-04-01"), AppointmentTime: "09:00:00", WorkHours: 3, Status: "confirmed"},
			{CaregiverUserID: yerlan, MemberUserID: timur, AppointmentDate: day("2025-04-02"), AppointmentTime: "14:00:00", WorkHours: 4, Status: "confirmed"},
			{CaregiverUserID: dana, MemberUserID: saule, AppointmentDate: day("2025-04-03"), AppointmentTime: "10:30:00", WorkHours: 2.5, Status: "confirmed"},
			{CaregiverUserID: aigerim, MemberUserID: timur, AppointmentDate: day("2025-04-04"), AppointmentTime: "16:00:00", WorkHours: 2, Status: "pending"},
			{CaregiverUserID: arman, MemberUserID: amina, AppointmentDate: day("2025-04-05"), AppointmentTime: "18:00:00", WorkHours: 1, Status: "declined"},
		}
		if err := tx.Omit(clause.Associations).Create(&appointments).Error; err != nil {
			return fmt.Errorf("seed appointments: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
