package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/vendor-tracker/internal/models"
	"github.com/diewo77/vendor-tracker/internal/search"
)

func TestClientCreateAssignsUniqueIDs(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)

	seen := map[uint]bool{}
	for _, name := range []string{"Acme", "Globex", "Initech"} {
		c := &models.Client{Name: name}
		require.NoError(t, clients.Create(c))
		assert.False(t, seen[c.ID], "id %d assigned twice", c.ID)
		seen[c.ID] = true
	}
}

func TestClientCreateRequiresName(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)

	var ve *ValidationError
	err := clients.Create(&models.Client{Name: "   "})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
}

func TestClientCreateResolvesDomain(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)

	c := &models.Client{Name: "Acme", DomainID: 2}
	require.NoError(t, clients.Create(c))
	assert.Equal(t, models.Domains[1], c.DomainName)

	var ve *ValidationError
	err := clients.Create(&models.Client{Name: "Globex", DomainID: 99})
	require.ErrorAs(t, err, &ve)
}

func TestClientListMostRecentFirst(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)

	seedClient(t, gdb, "First")
	seedClient(t, gdb, "Second")
	seedClient(t, gdb, "Third")

	got, err := clients.List()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Third", got[0].Name)
	assert.Equal(t, "First", got[2].Name)
}

func TestClientGetNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	var nfe *NotFoundError
	_, err := NewClientStore(gdb).Get(42)
	require.ErrorAs(t, err, &nfe)
}

func TestClientUpdatePartial(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)
	c := seedClient(t, gdb, "Acme")

	city := "Dallas"
	got, err := clients.Update(c.ID, ClientUpdate{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Dallas", got.City)
	assert.Equal(t, "Acme", got.Name, "unset fields stay untouched")

	empty := ""
	_, err = clients.Update(c.ID, ClientUpdate{Name: &empty})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestClientDeleteBlockedByLinks(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)
	links := NewLinkStore(gdb)
	c := seedClient(t, gdb, "Acme")
	v := seedVendor(t, gdb, "TechConnect")
	_, err := links.Attach(c.ID, v.ID, models.RoleVendor)
	require.NoError(t, err)

	var ce *ConflictError
	require.ErrorAs(t, clients.Delete(c.ID), &ce)

	require.NoError(t, links.Detach(c.ID, v.ID))
	require.NoError(t, clients.Delete(c.ID))
}

func TestClientDeleteCascadesAddresses(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)
	addrs := NewAddressStore(gdb)
	c := seedClient(t, gdb, "Acme")

	a := &models.Address{ClientID: &c.ID, City: "Dallas", AddressType: models.AddressTypeOffice}
	require.NoError(t, addrs.Create(a))

	require.NoError(t, clients.Delete(c.ID))

	var left int64
	require.NoError(t, gdb.Model(&models.Address{}).Where("client_id = ?", c.ID).Count(&left).Error)
	assert.Zero(t, left)
}

func TestClientSearchByStateAndCity(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)
	require.NoError(t, clients.Create(&models.Client{Name: "Acme", State: "CT", City: "Hartford"}))
	require.NoError(t, clients.Create(&models.Client{Name: "Globex", State: "TX", City: "Dallas"}))
	require.NoError(t, clients.Create(&models.Client{Name: "Initech", State: "TX", City: "Austin"}))

	got, err := clients.Search(search.Predicate{search.FieldState: "tx", search.FieldCity: "dal"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].Name)
}

func TestClientSearchByVendorName(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientStore(gdb)
	links := NewLinkStore(gdb)
	c1 := seedClient(t, gdb, "Acme")
	seedClient(t, gdb, "Globex")
	v := seedVendor(t, gdb, "TechConnect")
	_, err := links.Attach(c1.ID, v.ID, models.RoleVendor)
	require.NoError(t, err)

	got, err := clients.Search(search.Predicate{search.FieldVendorName: "techcon"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Name)
}

func TestVendorDeleteBlockedByLinks(t *testing.T) {
	gdb := setupTestDB(t)
	vendors := NewVendorStore(gdb)
	links := NewLinkStore(gdb)
	c := seedClient(t, gdb, "Acme")
	v := seedVendor(t, gdb, "TechConnect")
	_, err := links.Attach(c.ID, v.ID, models.RolePrimeVendor)
	require.NoError(t, err)

	var ce *ConflictError
	require.ErrorAs(t, vendors.Delete(v.ID), &ce)
}

func TestVendorDuplicateNameConflicts(t *testing.T) {
	gdb := setupTestDB(t)
	vendors := NewVendorStore(gdb)
	seedVendor(t, gdb, "TechConnect")

	var ce *ConflictError
	err := vendors.Create(&models.Vendor{Name: "TechConnect"})
	require.ErrorAs(t, err, &ce)
}

func TestVendorStats(t *testing.T) {
	gdb := setupTestDB(t)
	vendors := NewVendorStore(gdb)
	require.NoError(t, vendors.Create(&models.Vendor{Name: "A"}))
	require.NoError(t, vendors.Create(&models.Vendor{Name: "B", Status: models.VendorStatusInactive}))

	total, active, inactive, err := vendors.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.EqualValues(t, 1, active)
	assert.EqualValues(t, 1, inactive)
}

func TestAddressOwnerXOR(t *testing.T) {
	gdb := setupTestDB(t)
	addrs := NewAddressStore(gdb)
	c := seedClient(t, gdb, "Acme")
	v := seedVendor(t, gdb, "TechConnect")

	var ve *ValidationError
	err := addrs.Create(&models.Address{ClientID: &c.ID, VendorID: &v.ID})
	require.ErrorAs(t, err, &ve)

	err = addrs.Create(&models.Address{})
	require.ErrorAs(t, err, &ve)

	require.NoError(t, addrs.Create(&models.Address{ClientID: &c.ID, AddressType: models.AddressTypeBilling}))
	require.NoError(t, addrs.Create(&models.Address{VendorID: &v.ID, IsPrimary: true}))
}
