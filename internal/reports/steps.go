package reports

import (
	dbpkg "github.com/BruksfildServices01/caregivers-platform/internal/db"
)

// Params holds the names and patterns the report runs against.
type Params struct {
	PhoneGivenName string
	PhoneSurname   string
	NewPhone       string

	JobsGivenName string
	JobsSurname   string

	Street string

	RequirementPattern string
	ChildCareType      string
	ElderlyCareType    string
	City               string
	HouseRulePattern   string
}

func DefaultParams() Params {
	return Params{
		PhoneGivenName: "Arman",
		PhoneSurname:   "Armanov",
		NewPhone:       "+77773414141",

		JobsGivenName: "Amina",
		JobsSurname:   "Aminova",

		Street: "Kabanbay Batyr",

		RequirementPattern: "%soft-spoken%",
		ChildCareType:      "babysitter",
		ElderlyCareType:    "elderly care",
		City:               "Astana",
		HouseRulePattern:   "%No pets%",
	}
}

// Statement is one mutating SQL statement with its bind arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Query is a read-only statement whose rows are printed. Sheet names the
// worksheet the result lands in when exported.
type Query struct {
	Title string
	Sheet string
	SQL   string
	Args  []any
}

// Step is one unit of the report. Mutation, when set, commits before any
// of the checks run.
type Step struct {
	Section  string
	Title    string
	Note     string
	Mutation *Statement
	Done     string
	Checks   []Query
}

const (
	sectionCreate  = "1. CREATE SQL STATEMENTS"
	sectionInsert  = "2. INSERT SQL STATEMENTS"
	sectionUpdate  = "3. UPDATE SQL STATEMENTS"
	sectionDelete  = "4. DELETE SQL STATEMENTS"
	sectionSimple  = "5. SIMPLE QUERIES"
	sectionComplex = "6. COMPLEX QUERIES"
	sectionDerived = "7. QUERY WITH A DERIVED ATTRIBUTE"
	sectionView    = "8. VIEW OPERATION"
)

// CommissionSQL raises every caregiver's rate: a flat 0.3 below 10 and
// 10% from 10 upwards. A rate of exactly 10 takes the percentage branch.
const CommissionSQL = `
UPDATE caregiver
SET hourly_rate = CASE
    WHEN hourly_rate < 10 THEN hourly_rate + 0.3
    ELSE hourly_rate * 1.10
END`

// ApplicantCountSQL lists every job with its applicant count, zero included.
const ApplicantCountSQL = `
SELECT
    j.job_id,
    u.given_name || ' ' || u.surname AS member_name,
    COUNT(ja.caregiver_user_id) AS number_of_applicants
FROM job j
JOIN member m ON j.member_user_id = m.member_user_id
JOIN "user" u ON m.member_user_id = u.user_id
LEFT JOIN job_application ja ON j.job_id = ja.job_id
GROUP BY j.job_id, u.given_name, u.surname
ORDER BY j.job_id`

// AboveAverageSQL keeps caregivers whose confirmed earnings are strictly
// greater than the average confirmed appointment pay.
const AboveAverageSQL = `
SELECT
    u.given_name,
    u.surname,
    c.hourly_rate,
    SUM(a.work_hours) AS total_hours,
    SUM(c.hourly_rate * a.work_hours) AS total_earnings
FROM appointment a
JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
JOIN "user" u ON c.caregiver_user_id = u.user_id
WHERE a.status = 'confirmed'
GROUP BY u.given_name, u.surname, c.hourly_rate
HAVING SUM(c.hourly_rate * a.work_hours) > (
    SELECT AVG(sub_c.hourly_rate * sub_a.work_hours)
    FROM appointment sub_a
    JOIN caregiver sub_c ON sub_a.caregiver_user_id = sub_c.caregiver_user_id
    WHERE sub_a.status = 'confirmed'
)
ORDER BY total_earnings DESC`

// Steps returns the report in the order it must run.
func Steps(p Params) []Step {
	return []Step{
		{
			Section: sectionCreate,
			Note:    "Tables are created by the schema migration before the report runs.",
		},
		{
			Section: sectionInsert,
			Note:    "Demo rows are inserted with -seed when the database is empty.",
		},

		// ------------------------------------------------------
		// 3. updates
		// ------------------------------------------------------
		{
			Section: sectionUpdate,
			Title:   "3.1 Updating phone number of " + p.PhoneGivenName + " " + p.PhoneSurname + " to " + p.NewPhone,
			Mutation: &Statement{
				SQL:  `UPDATE "user" SET phone_number = ? WHERE given_name = ? AND surname = ?`,
				Args: []any{p.NewPhone, p.PhoneGivenName, p.PhoneSurname},
			},
			Done: "Phone number updated successfully",
			Checks: []Query{{
				Title: "Verification - " + p.PhoneGivenName + " " + p.PhoneSurname + "'s phone number:",
				Sheet: "3.1 phone",
				SQL:   `SELECT given_name, surname, phone_number FROM "user" WHERE given_name = ? AND surname = ?`,
				Args:  []any{p.PhoneGivenName, p.PhoneSurname},
			}},
		},
		{
			Section:  sectionUpdate,
			Title:    "3.2 Adding commission fee to caregivers' hourly rate",
			Mutation: &Statement{SQL: CommissionSQL},
			Done:     "Commission fee added successfully",
			Checks: []Query{{
				Title: "Verification - Updated hourly rates:",
				Sheet: "3.2 rates",
				SQL:   `SELECT caregiver_user_id, hourly_rate FROM caregiver ORDER BY caregiver_user_id`,
			}},
		},

		// ------------------------------------------------------
		// 4. deletes
		// ------------------------------------------------------
		{
			Section: sectionDelete,
			Title:   "4.1 Deleting jobs posted by " + p.JobsGivenName + " " + p.JobsSurname,
			Mutation: &Statement{
				SQL: `
DELETE FROM job
WHERE member_user_id IN (
    SELECT member_user_id
    FROM member
    WHERE member_user_id IN (
        SELECT user_id FROM "user" WHERE given_name = ? AND surname = ?
    )
)`,
				Args: []any{p.JobsGivenName, p.JobsSurname},
			},
			Done: "Jobs deleted successfully",
			Checks: []Query{{
				Title: "Verification - Remaining jobs by " + p.JobsGivenName + " " + p.JobsSurname + " (should be empty):",
				Sheet: "4.1 jobs",
				SQL: `
SELECT j.job_id, u.given_name, u.surname
FROM job j
JOIN member m ON j.member_user_id = m.member_user_id
JOIN "user" u ON m.member_user_id = u.user_id
WHERE u.given_name = ? AND u.surname = ?`,
				Args: []any{p.JobsGivenName, p.JobsSurname},
			}},
		},
		{
			Section: sectionDelete,
			Title:   "4.2 Deleting all members who live on " + p.Street + " street",
			Mutation: &Statement{
				SQL: `
DELETE FROM member
WHERE member_user_id IN (
    SELECT member_user_id FROM address WHERE street = ?
)`,
				Args: []any{p.Street},
			},
			Done: "Members deleted successfully",
			Checks: []Query{{
				Title: "Verification - Remaining members on " + p.Street + " (should be empty):",
				Sheet: "4.2 members",
				SQL: `
SELECT m.member_user_id, u.given_name, u.surname, a.street
FROM member m
JOIN "user" u ON m.member_user_id = u.user_id
JOIN address a ON m.member_user_id = a.member_user_id
WHERE a.street = ?`,
				Args: []any{p.Street},
			}},
		},

		// ------------------------------------------------------
		// 5. simple queries
		// ------------------------------------------------------
		{
			Section: sectionSimple,
			Checks: []Query{
				{
					Title: "5.1 Caregiver and member names for accepted appointments:",
					Sheet: "5.1 accepted",
					SQL: `
SELECT
    cg.given_name AS caregiver_given_name,
    cg.surname AS caregiver_surname,
    m.given_name AS member_given_name,
    m.surname AS member_surname
FROM appointment a
JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
JOIN "user" cg ON c.caregiver_user_id = cg.user_id
JOIN member mem ON a.member_user_id = mem.member_user_id
JOIN "user" m ON mem.member_user_id = m.user_id
WHERE a.status = 'confirmed'
ORDER BY a.appointment_id`,
				},
				{
					Title: "5.2 Job IDs matching '" + p.RequirementPattern + "' in requirements:",
					Sheet: "5.2 requirements",
					SQL:   `SELECT job_id, other_requirements FROM job WHERE other_requirements LIKE ? ORDER BY job_id`,
					Args:  []any{p.RequirementPattern},
				},
				{
					Title: "5.3 Work hours of all " + p.ChildCareType + " positions:",
					Sheet: "5.3 hours",
					SQL: `
SELECT a.appointment_id, a.work_hours, c.caregiving_type
FROM appointment a
JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
WHERE c.caregiving_type = ?
ORDER BY a.appointment_id`,
					Args: []any{p.ChildCareType},
				},
				{
					Title: "5.4 Members looking for " + p.ElderlyCareType + " in " + p.City + " with '" + p.HouseRulePattern + "' rule:",
					Sheet: "5.4 members",
					SQL: `
SELECT DISTINCT u.user_id, u.given_name, u.surname, u.city, m.house_rules
FROM member m
JOIN "user" u ON m.member_user_id = u.user_id
JOIN job j ON m.member_user_id = j.member_user_id
WHERE j.required_caregiving_type = ?
    AND u.city = ?
    AND m.house_rules LIKE ?
ORDER BY u.user_id`,
					Args: []any{p.ElderlyCareType, p.City, p.HouseRulePattern},
				},
			},
		},

		// ------------------------------------------------------
		// 6. analytical queries
		// ------------------------------------------------------
		{
			Section: sectionComplex,
			Checks: []Query{
				{
					Title: "6.1 Number of applicants for each job:",
					Sheet: "6.1 applicants",
					SQL:   ApplicantCountSQL,
				},
				{
					Title: "6.2 Total hours spent by caregivers for all accepted appointments:",
					Sheet: "6.2 total hours",
					SQL:   `SELECT SUM(a.work_hours) AS total_hours FROM appointment a WHERE a.status = 'confirmed'`,
				},
				{
					Title: "6.3 Average pay of caregivers based on accepted appointments:",
					Sheet: "6.3 average pay",
					SQL: `
SELECT AVG(c.hourly_rate * a.work_hours) AS average_pay
FROM appointment a
JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
WHERE a.status = 'confirmed'`,
				},
				{
					Title: "6.4 Caregivers who earn above average based on accepted appointments:",
					Sheet: "6.4 above average",
					SQL:   AboveAverageSQL,
				},
			},
		},

		// ------------------------------------------------------
		// 7. derived attribute
		// ------------------------------------------------------
		{
			Section: sectionDerived,
			Checks: []Query{{
				Title: "7. Total cost to pay for caregivers for all accepted appointments:",
				Sheet: "7 total cost",
				SQL: `
SELECT
    a.appointment_id,
    u.given_name || ' ' || u.surname AS caregiver_name,
    a.work_hours,
    c.hourly_rate,
    (c.hourly_rate * a.work_hours) AS total_cost
FROM appointment a
JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
JOIN "user" u ON c.caregiver_user_id = u.user_id
WHERE a.status = 'confirmed'
ORDER BY a.appointment_id`,
			}},
		},

		// ------------------------------------------------------
		// 8. view
		// ------------------------------------------------------
		{
			Section:  sectionView,
			Title:    "Creating view: job_applications_view",
			Mutation: &Statement{SQL: dbpkg.JobApplicationsViewSQL},
			Done:     "View created successfully",
			Checks: []Query{{
				Title: "8. View: All job applications and applicants:",
				Sheet: "8 view",
				SQL:   `SELECT * FROM job_applications_view ORDER BY job_id, date_applied`,
			}},
		},
	}
}
