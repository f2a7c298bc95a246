package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/models"
)

type submissionFixture struct {
	client     *models.Client
	vendor     *models.Vendor
	prime      *models.Vendor
	consultant *models.Consultant
	skill      *models.Skill
	marketer   *models.Marketer
}

func seedSubmissionRefs(t *testing.T, gdb *gorm.DB) submissionFixture {
	t.Helper()
	refs := NewReferenceStore(gdb)
	f := submissionFixture{
		client:   seedClient(t, gdb, "Acme"),
		vendor:   seedVendor(t, gdb, "TechConnect"),
		prime:    seedVendor(t, gdb, "PrimeSoft"),
		skill:    &models.Skill{Name: "Java"},
		marketer: &models.Marketer{Name: "Dana"},
	}
	require.NoError(t, refs.AddSkill(f.skill))
	require.NoError(t, refs.AddMarketer(f.marketer))
	f.consultant = &models.Consultant{FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com", SkillID: f.skill.ID}
	require.NoError(t, refs.AddConsultant(f.consultant))
	return f
}

func (f submissionFixture) base() models.Submission {
	return models.Submission{
		ConsultantID: f.consultant.ID,
		SkillID:      f.skill.ID,
		ClientID:     f.client.ID,
		VendorID:     f.vendor.ID,
		MarketerID:   f.marketer.ID,
	}
}

func TestSubmissionCreateDefaults(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	sub := f.base()
	require.NoError(t, subs.Create(&sub))
	assert.Equal(t, models.SubmissionStatusPending, sub.Status)
	assert.False(t, sub.SubmissionDate.IsZero())
}

func TestSubmissionPrimeVendorRequiresRoleLink(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	links := NewLinkStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	sub := f.base()
	sub.PrimeVendorID = &f.prime.ID

	var ve *ValidationError
	require.ErrorAs(t, subs.Create(&sub), &ve)
	assert.Equal(t, "prime_vendor_id", ve.Field)

	// A plain Vendor link is not enough; the role has to match.
	_, err := links.Attach(f.client.ID, f.prime.ID, models.RoleVendor)
	require.NoError(t, err)
	require.ErrorAs(t, subs.Create(&sub), &ve)

	_, err = links.Attach(f.client.ID, f.prime.ID, models.RolePrimeVendor)
	require.NoError(t, err)
	require.NoError(t, subs.Create(&sub))
}

func TestSubmissionImplementationPartnerRequiresRoleLink(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	links := NewLinkStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	sub := f.base()
	sub.ImplementationPartnerID = &f.prime.ID

	var ve *ValidationError
	require.ErrorAs(t, subs.Create(&sub), &ve)

	_, err := links.Attach(f.client.ID, f.prime.ID, models.RoleImplementationPartner)
	require.NoError(t, err)
	require.NoError(t, subs.Create(&sub))
}

func TestSubmissionCreateUnknownReference(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	sub := f.base()
	sub.ConsultantID = 999
	var nfe *NotFoundError
	require.ErrorAs(t, subs.Create(&sub), &nfe)
	assert.Equal(t, "consultant", nfe.Entity)
}

func TestVendorDeleteBlockedBySubmission(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	links := NewLinkStore(gdb)
	vendors := NewVendorStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	_, err := links.Attach(f.client.ID, f.prime.ID, models.RolePrimeVendor)
	require.NoError(t, err)
	sub := f.base()
	sub.PrimeVendorID = &f.prime.ID
	require.NoError(t, subs.Create(&sub))

	// Referenced as prime vendor by the submission: delete must conflict
	// even after links are gone.
	require.NoError(t, links.Detach(f.client.ID, f.prime.ID))
	var ce *ConflictError
	require.ErrorAs(t, vendors.Delete(f.prime.ID), &ce)
}

func TestClientDeleteBlockedBySubmission(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	clients := NewClientStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	sub := f.base()
	require.NoError(t, subs.Create(&sub))

	var ce *ConflictError
	require.ErrorAs(t, clients.Delete(f.client.ID), &ce)
}

func TestSubmissionUpdateOnlyStatusAndComments(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	sub := f.base()
	sub.Comments = "initial"
	require.NoError(t, subs.Create(&sub))

	status := models.SubmissionStatusInterview
	comments := "phone screen scheduled"
	got, err := subs.Update(sub.ID, &status, &comments)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusInterview, got.Status)
	assert.Equal(t, "phone screen scheduled", got.Comments)
	assert.Equal(t, sub.VendorID, got.VendorID)

	// The status set is extensible: unknown non-empty values pass through.
	custom := "client-review"
	got, err = subs.Update(sub.ID, &custom, nil)
	require.NoError(t, err)
	assert.Equal(t, "client-review", got.Status)
}

func TestSubmissionListDenormalizedPreloads(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	sub := f.base()
	require.NoError(t, subs.Create(&sub))

	got, err := subs.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Client.Name)
	assert.Equal(t, "TechConnect", got[0].Vendor.Name)
	assert.Equal(t, "Java", got[0].Skill.Name)
	assert.Equal(t, "Dana", got[0].Marketer.Name)
	assert.Equal(t, "Ravi Kumar", got[0].Consultant.DisplayName())
}

func TestSubmissionQueriesByReference(t *testing.T) {
	gdb := setupTestDB(t)
	subs := NewSubmissionStore(gdb)
	links := NewLinkStore(gdb)
	f := seedSubmissionRefs(t, gdb)

	plain := f.base()
	require.NoError(t, subs.Create(&plain))

	_, err := links.Attach(f.client.ID, f.prime.ID, models.RolePrimeVendor)
	require.NoError(t, err)
	chained := f.base()
	chained.PrimeVendorID = &f.prime.ID
	require.NoError(t, subs.Create(&chained))

	byClient, err := subs.ByClient(f.client.ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	// ByVendor matches any chain position, so the prime vendor sees only
	// the chained submission.
	byPrime, err := subs.ByVendor(f.prime.ID)
	require.NoError(t, err)
	require.Len(t, byPrime, 1)
	assert.Equal(t, chained.ID, byPrime[0].ID)

	report, err := subs.Report()
	require.NoError(t, err)
	assert.EqualValues(t, 2, report[models.SubmissionStatusPending])
}

func TestConsultantDuplicateEmailConflicts(t *testing.T) {
	gdb := setupTestDB(t)
	refs := NewReferenceStore(gdb)
	require.NoError(t, refs.AddConsultant(&models.Consultant{FirstName: "A", LastName: "B", Email: "dup@example.com"}))

	var ce *ConflictError
	err := refs.AddConsultant(&models.Consultant{FirstName: "C", LastName: "D", Email: "DUP@example.com"})
	require.ErrorAs(t, err, &ce)
}

func TestSkillsSortedAndUnique(t *testing.T) {
	gdb := setupTestDB(t)
	refs := NewReferenceStore(gdb)
	require.NoError(t, refs.AddSkill(&models.Skill{Name: "Java"}))
	require.NoError(t, refs.AddSkill(&models.Skill{Name: "Go"}))

	var ce *ConflictError
	require.ErrorAs(t, refs.AddSkill(&models.Skill{Name: "java"}), &ce)

	skills, err := refs.Skills()
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
}
