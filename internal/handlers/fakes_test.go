package handlers_test

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/job"
	"github.com/BruksfildServices01/caregivers-platform/internal/flash"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

// ------------------------------------------------------
// flash / audit
// ------------------------------------------------------

type memFlash struct {
	mu      sync.Mutex
	added   []flash.Message
	pending []flash.Message
}

func (f *memFlash) Add(_ *gin.Context, m flash.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, m)
	return nil
}

func (f *memFlash) Pop(_ *gin.Context) ([]flash.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out, nil
}

func (f *memFlash) last() flash.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.added) == 0 {
		return flash.Message{}
	}
	return f.added[len(f.added)-1]
}

type auditEntry struct {
	Action, Entity, Key string
}

type memAudit struct {
	entries []auditEntry
	filter  audit.Filter
	recent  []models.AuditLog
}

func (a *memAudit) Recent(_ context.Context, f audit.Filter) ([]models.AuditLog, error) {
	a.filter = f
	return a.recent, nil
}

func (a *memAudit) Log(_ context.Context, action, entity, key string, _ any) error {
	a.entries = append(a.entries, auditEntry{action, entity, key})
	return nil
}

// ------------------------------------------------------
// users
// ------------------------------------------------------

type fakeUsers struct {
	rows map[uint]models.User
	next uint
	err  error
}

func newFakeUsers() *fakeUsers { return &fakeUsers{rows: map[uint]models.User{}, next: 1} }

func (r *fakeUsers) List(context.Context) ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.User, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *fakeUsers) Create(_ context.Context, u *models.User) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.rows {
		if existing.Email == u.Email {
			return httperr.Integrity("unique_violation", `duplicate key value violates unique constraint "idx_user_email"`, nil)
		}
	}
	u.UserID = r.next
	r.next++
	r.rows[u.UserID] = *u
	return nil
}

func (r *fakeUsers) Find(_ context.Context, id uint) (*models.User, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	u, ok := r.rows[id]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}

func (r *fakeUsers) Update(_ context.Context, id uint, u *models.User) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.rows[id]; !ok {
		return nil, httperr.NotFound("user_not_found", "user not found")
	}
	u.UserID = id
	r.rows[id] = *u
	return u, nil
}

func (r *fakeUsers) Delete(_ context.Context, id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

// ------------------------------------------------------
// caregivers / members / addresses / jobs
// ------------------------------------------------------

type fakeCaregivers struct {
	ids       []uint
	createErr error
	created   []models.Caregiver
	photos    map[uint]string
}

func (r *fakeCaregivers) List(context.Context) ([]models.Caregiver, error) { return r.created, nil }

func (r *fakeCaregivers) Create(_ context.Context, u *models.User, cg *models.Caregiver) error {
	if r.createErr != nil {
		return r.createErr
	}
	u.UserID = uint(100 + len(r.created))
	cg.CaregiverUserID = u.UserID
	cg.User = *u
	r.created = append(r.created, *cg)
	return nil
}

func (r *fakeCaregivers) Find(_ context.Context, id uint) (*models.Caregiver, bool, error) {
	for _, known := range r.ids {
		if known == id {
			return &models.Caregiver{CaregiverUserID: id}, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeCaregivers) Update(_ context.Context, id uint, cg *models.Caregiver) (*models.Caregiver, error) {
	cg.CaregiverUserID = id
	return cg, nil
}

func (r *fakeCaregivers) Delete(context.Context, uint) error { return nil }

func (r *fakeCaregivers) IDs(context.Context) ([]uint, error) { return r.ids, nil }

func (r *fakeCaregivers) SetPhoto(_ context.Context, id uint, url string) error {
	if r.photos == nil {
		r.photos = map[uint]string{}
	}
	r.photos[id] = url
	return nil
}

type fakeMembers struct {
	ids []uint
	err error
}

func (r *fakeMembers) List(context.Context) ([]models.Member, error) { return nil, r.err }

func (r *fakeMembers) Create(_ context.Context, u *models.User, m *models.Member) error {
	if r.err != nil {
		return r.err
	}
	u.UserID = 200
	m.MemberUserID = u.UserID
	return nil
}

func (r *fakeMembers) Find(context.Context, uint) (*models.Member, bool, error) { return nil, false, r.err }

func (r *fakeMembers) Update(context.Context, uint, *models.Member) (*models.Member, error) {
	return nil, httperr.NotFound("member_not_found", "member not found")
}

func (r *fakeMembers) Delete(context.Context, uint) error { return r.err }

func (r *fakeMembers) IDs(context.Context) ([]uint, error) { return r.ids, r.err }

type fakeAddresses struct{}

func (fakeAddresses) List(context.Context) ([]models.Address, error) { return nil, nil }
func (fakeAddresses) Create(context.Context, *models.Address) error { return nil }
func (fakeAddresses) Find(context.Context, uint) (*models.Address, bool, error) {
	return nil, false, nil
}
func (fakeAddresses) Update(context.Context, uint, *models.Address) (*models.Address, error) {
	return nil, httperr.NotFound("address_not_found", "address not found")
}
func (fakeAddresses) Delete(context.Context, uint) error { return nil }

type fakeJobs struct {
	ids []uint
}

func (r *fakeJobs) List(context.Context) ([]models.Job, error) { return nil, nil }
func (r *fakeJobs) Create(_ context.Context, j *models.Job) error {
	j.JobID = 1
	return nil
}
func (r *fakeJobs) Find(context.Context, uint) (*models.Job, bool, error) { return nil, false, nil }
func (r *fakeJobs) Update(_ context.Context, id uint, j *models.Job) (*models.Job, error) {
	return j, nil
}
func (r *fakeJobs) Delete(context.Context, uint) error { return nil }
func (r *fakeJobs) IDs(context.Context) ([]uint, error) { return r.ids, nil }

// ------------------------------------------------------
// job applications / appointments
// ------------------------------------------------------

type fakeApplications struct {
	rows map[job.ApplicationKey]models.JobApplication
}

func (r *fakeApplications) List(context.Context) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, a := range r.rows {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeApplications) Create(_ context.Context, a *models.JobApplication) error {
	k := job.ApplicationKey{CaregiverUserID: a.CaregiverUserID, JobID: a.JobID}
	if _, dup := r.rows[k]; dup {
		return httperr.Integrity("unique_violation", `duplicate key value violates unique constraint "job_application_pkey"`, nil)
	}
	r.rows[k] = *a
	return nil
}

func (r *fakeApplications) Find(_ context.Context, k job.ApplicationKey) (*models.JobApplication, bool, error) {
	a, ok := r.rows[k]
	if !ok {
		return nil, false, nil
	}
	return &a, true, nil
}

func (r *fakeApplications) Update(_ context.Context, k job.ApplicationKey, a *models.JobApplication) (*models.JobApplication, error) {
	if _, ok := r.rows[k]; !ok {
		return nil, httperr.NotFound("job_application_not_found", "job_application not found")
	}
	a.CaregiverUserID, a.JobID = k.CaregiverUserID, k.JobID
	r.rows[k] = *a
	return a, nil
}

func (r *fakeApplications) Delete(_ context.Context, k job.ApplicationKey) error {
	delete(r.rows, k)
	return nil
}

type fakeAppointments struct {
	created []models.Appointment
}

func (r *fakeAppointments) List(context.Context) ([]models.Appointment, error) { return r.created, nil }
func (r *fakeAppointments) Create(_ context.Context, ap *models.Appointment) error {
	ap.AppointmentID = uint(len(r.created) + 1)
	r.created = append(r.created, *ap)
	return nil
}
func (r *fakeAppointments) Find(context.Context, uint) (*models.Appointment, bool, error) {
	return nil, false, nil
}
func (r *fakeAppointments) Update(context.Context, uint, *models.Appointment) (*models.Appointment, error) {
	return nil, httperr.NotFound("appointment_not_found", "appointment not found")
}
func (r *fakeAppointments) Delete(context.Context, uint) error { return nil }

// ------------------------------------------------------
// photos
// ------------------------------------------------------

type fakePhotos struct {
	uploaded []uint
}

func (p *fakePhotos) Upload(_ context.Context, id uint, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	p.uploaded = append(p.uploaded, id)
	return "https://cdn.test/caregivers/photo.webp", nil
}
