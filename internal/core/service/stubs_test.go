package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// ---------------------------------------------------------------------------
// In-memory tables and transactions
// ---------------------------------------------------------------------------

// snapshotter is implemented by every stub store taking part in stubTx.
type snapshotter interface {
	snapshot() (restore func())
}

// stubTx rolls every registered store back when fn fails. commitErr simulates
// a failure after fn succeeded.
type stubTx struct {
	stores    []snapshotter
	commitErr error
	calls     int
}

func (t *stubTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	restores := make([]func(), 0, len(t.stores))
	for _, s := range t.stores {
		restores = append(restores, s.snapshot())
	}
	err := fn(ctx)
	if err == nil {
		err = t.commitErr
	}
	if err != nil {
		for _, r := range restores {
			r()
		}
	}
	return err
}

// table stores clones keyed by uuid. Rows are replaced, never mutated, so a
// shallow map copy is a full snapshot.
type table[T any] struct {
	rows map[string]*T
	seq  int
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

func (t *table[T]) snapshot() func() {
	saved, seq := maps.Clone(t.rows), t.seq
	return func() { t.rows, t.seq = saved, seq }
}

func (t *table[T]) nextID(prefix string) string {
	t.seq++
	return fmt.Sprintf("%s-%04d", prefix, t.seq)
}

func (t *table[T]) get(key string) (*T, bool) {
	row, ok := t.rows[key]
	if !ok {
		return nil, false
	}
	clone := *row
	return &clone, true
}

func (t *table[T]) put(key string, row *T) {
	clone := *row
	t.rows[key] = &clone
}

// sorted returns clones ordered by key.
func (t *table[T]) sorted(keep func(*T) bool) []*T {
	keys := slices.Sorted(maps.Keys(t.rows))
	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		if keep != nil && !keep(t.rows[k]) {
			continue
		}
		clone := *t.rows[k]
		out = append(out, &clone)
	}
	return out
}

// ---------------------------------------------------------------------------
// Klant and subject repositories
// ---------------------------------------------------------------------------

type stubKlantRepo struct {
	*table[domain.Klant]
	updateErr error
}

func newStubKlantRepo() *stubKlantRepo {
	return &stubKlantRepo{table: newTable[domain.Klant]()}
}

func (r *stubKlantRepo) Create(_ context.Context, k *domain.Klant) error {
	if k.ID == "" {
		k.ID = r.nextID("klant")
	}
	r.put(k.UUID, k)
	return nil
}

func (r *stubKlantRepo) FindByUUID(_ context.Context, uuid string) (*domain.Klant, error) {
	k, ok := r.get(uuid)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return k, nil
}

func (r *stubKlantRepo) Update(_ context.Context, k *domain.Klant) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.rows[k.UUID]; !ok {
		return domain.ErrNotFound
	}
	r.put(k.UUID, k)
	return nil
}

func (r *stubKlantRepo) Delete(_ context.Context, uuid string) error {
	if _, ok := r.rows[uuid]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, uuid)
	return nil
}

func (r *stubKlantRepo) List(_ context.Context) ([]*domain.Klant, error) {
	return r.sorted(nil), nil
}

// stubSubjectRepo keeps variants keyed by klant and type. Stored values are
// deep copies so in-place edits by the service are only visible after Save.
type stubSubjectRepo struct {
	rows    map[string]domain.SubjectIdentificatie
	seq     int
	saveErr error
	saves   int
}

func newStubSubjectRepo() *stubSubjectRepo {
	return &stubSubjectRepo{rows: make(map[string]domain.SubjectIdentificatie)}
}

func (r *stubSubjectRepo) snapshot() func() {
	saved, seq := maps.Clone(r.rows), r.seq
	return func() { r.rows, r.seq = saved, seq }
}

func subjectKey(klantID string, t domain.SubjectType) string {
	return klantID + "/" + string(t)
}

func (r *stubSubjectRepo) FindByKlant(_ context.Context, klantID string, t domain.SubjectType) (domain.SubjectIdentificatie, error) {
	s, ok := r.rows[subjectKey(klantID, t)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneSubject(s), nil
}

func (r *stubSubjectRepo) Save(_ context.Context, s domain.SubjectIdentificatie) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	rec := s.Record()
	if rec.ID == "" {
		r.seq++
		rec.ID = fmt.Sprintf("subject-%04d", r.seq)
	}
	owner := domain.OwnerOf(s)
	if err := owner.Validate(); err != nil {
		return err
	}
	if a := rec.Verblijfsadres; a != nil {
		if a.ID == "" {
			r.seq++
			a.ID = fmt.Sprintf("adres-%04d", r.seq)
		}
		a.Owner = owner
	}
	if b := rec.SubVerblijfBuitenland; b != nil {
		if b.ID == "" {
			r.seq++
			b.ID = fmt.Sprintf("buitenland-%04d", r.seq)
		}
		b.Owner = owner
	}
	r.rows[subjectKey(rec.KlantID, s.SubjectType())] = cloneSubject(s)
	return nil
}

func (r *stubSubjectRepo) DeleteByKlant(_ context.Context, klantID string) error {
	for k := range r.rows {
		if strings.HasPrefix(k, klantID+"/") {
			delete(r.rows, k)
		}
	}
	return nil
}

func (r *stubSubjectRepo) count() int { return len(r.rows) }

func cloneSubject(s domain.SubjectIdentificatie) domain.SubjectIdentificatie {
	switch v := s.(type) {
	case *domain.NatuurlijkPersoon:
		c := *v
		c.SubjectRecord = cloneRecord(v.SubjectRecord)
		return &c
	case *domain.Vestiging:
		c := *v
		c.Handelsnaam = slices.Clone(v.Handelsnaam)
		c.SubjectRecord = cloneRecord(v.SubjectRecord)
		return &c
	}
	panic(fmt.Sprintf("unexpected subject %T", s))
}

func cloneRecord(r domain.SubjectRecord) domain.SubjectRecord {
	if r.Verblijfsadres != nil {
		a := *r.Verblijfsadres
		r.Verblijfsadres = &a
	}
	if r.SubVerblijfBuitenland != nil {
		b := *r.SubVerblijfBuitenland
		r.SubVerblijfBuitenland = &b
	}
	return r
}

// ---------------------------------------------------------------------------
// ContactMoment and Verzoek repositories
// ---------------------------------------------------------------------------

type stubContactMomentRepo struct {
	*table[domain.ContactMoment]
	medewerkers *table[domain.Medewerker]
	updateErr   error
}

func newStubContactMomentRepo() *stubContactMomentRepo {
	return &stubContactMomentRepo{
		table:       newTable[domain.ContactMoment](),
		medewerkers: newTable[domain.Medewerker](),
	}
}

func (r *stubContactMomentRepo) snapshot() func() {
	a, b := r.table.snapshot(), r.medewerkers.snapshot()
	return func() { a(); b() }
}

func (r *stubContactMomentRepo) Create(_ context.Context, cm *domain.ContactMoment) error {
	if cm.ID == "" {
		cm.ID = r.nextID("cm")
	}
	r.store(cm)
	return nil
}

func (r *stubContactMomentRepo) store(cm *domain.ContactMoment) {
	row := *cm
	row.MedewerkerIdentificatie = nil
	row.OnderwerpLinks = slices.Clone(cm.OnderwerpLinks)
	r.put(cm.UUID, &row)
}

func (r *stubContactMomentRepo) FindByUUID(_ context.Context, uuid string) (*domain.ContactMoment, error) {
	cm, ok := r.get(uuid)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if m, ok := r.medewerkers.get(cm.ID); ok {
		cm.MedewerkerIdentificatie = m
	}
	return cm, nil
}

func (r *stubContactMomentRepo) Update(_ context.Context, cm *domain.ContactMoment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.rows[cm.UUID]; !ok {
		return domain.ErrNotFound
	}
	r.store(cm)
	return nil
}

func (r *stubContactMomentRepo) Delete(_ context.Context, uuid string) error {
	cm, ok := r.rows[uuid]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.medewerkers.rows, cm.ID)
	delete(r.rows, uuid)
	return nil
}

func (r *stubContactMomentRepo) List(_ context.Context) ([]*domain.ContactMoment, error) {
	return r.sorted(nil), nil
}

func (r *stubContactMomentRepo) SaveMedewerker(_ context.Context, m *domain.Medewerker) error {
	if m.ID == "" {
		m.ID = r.medewerkers.nextID("medewerker")
	}
	r.medewerkers.put(m.ContactMomentID, m)
	return nil
}

type stubVerzoekRepo struct {
	*table[domain.Verzoek]
	sequences map[int]int64
}

func newStubVerzoekRepo() *stubVerzoekRepo {
	return &stubVerzoekRepo{table: newTable[domain.Verzoek](), sequences: make(map[int]int64)}
}

func (r *stubVerzoekRepo) Create(ctx context.Context, v *domain.Verzoek) error {
	taken, _ := r.ExistsIdentificatie(ctx, v.Bronorganisatie, v.Identificatie, "")
	if taken {
		return domain.ErrDuplicate
	}
	if v.ID == "" {
		v.ID = r.nextID("verzoek")
	}
	r.put(v.UUID, v)
	return nil
}

func (r *stubVerzoekRepo) FindByUUID(_ context.Context, uuid string) (*domain.Verzoek, error) {
	v, ok := r.get(uuid)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (r *stubVerzoekRepo) Update(_ context.Context, v *domain.Verzoek) error {
	if _, ok := r.rows[v.UUID]; !ok {
		return domain.ErrNotFound
	}
	r.put(v.UUID, v)
	return nil
}

func (r *stubVerzoekRepo) Delete(_ context.Context, uuid string) error {
	if _, ok := r.rows[uuid]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, uuid)
	return nil
}

func (r *stubVerzoekRepo) List(_ context.Context) ([]*domain.Verzoek, error) {
	return r.sorted(nil), nil
}

func (r *stubVerzoekRepo) ExistsIdentificatie(_ context.Context, bronorganisatie, identificatie, excludeUUID string) (bool, error) {
	for uuid, v := range r.rows {
		if uuid != excludeUUID && v.Bronorganisatie == bronorganisatie && v.Identificatie == identificatie {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVerzoekRepo) NextSequence(_ context.Context, year int) (int64, error) {
	r.sequences[year]++
	return r.sequences[year], nil
}

// ---------------------------------------------------------------------------
// Relation repositories
// ---------------------------------------------------------------------------

// stubRelationRepo serves every relation repository; match applies a filter.
type stubRelationRepo[T any, F any] struct {
	*table[T]
	uuidOf    func(*T) string
	match     func(*T, F) bool
	createErr error
}

func newStubRelationRepo[T any, F any](uuidOf func(*T) string, match func(*T, F) bool) *stubRelationRepo[T, F] {
	return &stubRelationRepo[T, F]{table: newTable[T](), uuidOf: uuidOf, match: match}
}

func (r *stubRelationRepo[T, F]) Create(_ context.Context, row *T) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.put(r.uuidOf(row), row)
	return nil
}

func (r *stubRelationRepo[T, F]) FindByUUID(_ context.Context, uuid string) (*T, error) {
	row, ok := r.get(uuid)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return row, nil
}

func (r *stubRelationRepo[T, F]) Delete(_ context.Context, uuid string) error {
	if _, ok := r.rows[uuid]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, uuid)
	return nil
}

func (r *stubRelationRepo[T, F]) List(_ context.Context, filter F) ([]*T, error) {
	return r.sorted(func(row *T) bool { return r.match(row, filter) }), nil
}

func (r *stubRelationRepo[T, F]) DeleteMatching(_ context.Context, filter F) error {
	for uuid, row := range r.rows {
		if r.match(row, filter) {
			delete(r.rows, uuid)
		}
	}
	return nil
}

type stubVIORepo struct {
	*stubRelationRepo[domain.VerzoekInformatieObject, ports.VerzoekInformatieObjectFilter]
}

func (r *stubVIORepo) SetRemote(_ context.Context, uuid, remote string) error {
	row, ok := r.get(uuid)
	if !ok {
		return domain.ErrNotFound
	}
	row.Remote = remote
	r.put(uuid, row)
	return nil
}

func matches(filter, value string) bool { return filter == "" || filter == value }

// ---------------------------------------------------------------------------
// Remote API, resource validation and pending set
// ---------------------------------------------------------------------------

type remoteCall struct {
	Ref      string
	Resource string
	Query    map[string]string
	Body     any
}

type stubRemote struct {
	mu        sync.Mutex
	results   map[string][]ports.Object
	listErr   error
	createErr error
	deleteErr error
	listed    []remoteCall
	created   []remoteCall
	deleted   []string
	seq       int
	// onDelete runs inside Delete, before it returns.
	onDelete func(url string)
}

func newStubRemote() *stubRemote {
	return &stubRemote{results: make(map[string][]ports.Object)}
}

func (r *stubRemote) List(_ context.Context, ref, resource string, query map[string]string) ([]ports.Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listed = append(r.listed, remoteCall{Ref: ref, Resource: resource, Query: query})
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.results[resource], nil
}

func (r *stubRemote) Create(_ context.Context, ref, resource string, body any) (ports.Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, remoteCall{Ref: ref, Resource: resource, Body: body})
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	return ports.Object{"url": fmt.Sprintf("http://remote.test/api/v1/%s/%d", resource, r.seq)}, nil
}

func (r *stubRemote) Retrieve(_ context.Context, url string) (ports.Object, error) {
	return ports.Object{"url": url}, nil
}

func (r *stubRemote) Delete(_ context.Context, url string) error {
	if r.onDelete != nil {
		r.onDelete(url)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, url)
	return r.deleteErr
}

// stubResources rejects the URLs in invalid with the given code.
type stubResources struct {
	invalid map[string]string
	checked []string
}

func (r *stubResources) Validate(_ context.Context, field, resource, url string) error {
	r.checked = append(r.checked, resource+" "+url)
	if code, ok := r.invalid[url]; ok {
		return domain.NewValidationError(field, code, "invalid "+resource)
	}
	return nil
}

type stubPending struct {
	sets map[string]map[string]struct{}
	err  error
}

func newStubPending() *stubPending {
	return &stubPending{sets: make(map[string]map[string]struct{})}
}

func (p *stubPending) Mark(_ context.Context, kind, uuid string) error {
	if p.err != nil {
		return p.err
	}
	if p.sets[kind] == nil {
		p.sets[kind] = make(map[string]struct{})
	}
	p.sets[kind][uuid] = struct{}{}
	return nil
}

func (p *stubPending) Clear(_ context.Context, kind, uuid string) error {
	if p.err != nil {
		return p.err
	}
	delete(p.sets[kind], uuid)
	return nil
}

func (p *stubPending) IsPending(_ context.Context, kind, uuid string) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	_, ok := p.sets[kind][uuid]
	return ok, nil
}

func (p *stubPending) Members(_ context.Context, kind string) (map[string]struct{}, error) {
	if p.err != nil {
		return nil, p.err
	}
	return maps.Clone(p.sets[kind]), nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

const testBaseURL = "http://klanten.test"

type fixture struct {
	urls resourceurl.Builder

	klanten                *stubKlantRepo
	subjects               *stubSubjectRepo
	contactMomenten        *stubContactMomentRepo
	verzoeken              *stubVerzoekRepo
	objectContactMomenten  *stubRelationRepo[domain.ObjectContactMoment, ports.ObjectContactMomentFilter]
	objectVerzoeken        *stubRelationRepo[domain.ObjectVerzoek, ports.ObjectVerzoekFilter]
	informatieObjecten     *stubVIORepo
	producten              *stubRelationRepo[domain.VerzoekProduct, ports.VerzoekProductFilter]
	verzoekContactMomenten *stubRelationRepo[domain.VerzoekContactMoment, ports.VerzoekContactMomentFilter]

	tx        *stubTx
	remote    *stubRemote
	resources *stubResources
	pending   *stubPending

	klantSvc     *KlantService
	cmSvc        *ContactMomentService
	verzoekSvc   *VerzoekService
	relationSvc  *ObjectRelationService
	vioSvc       *VerzoekInformatieObjectService
	linkSvc      *VerzoekLinkService
	notifier     *SyncNotifier
	relValidator *RelationValidator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zerolog.Nop()

	f := &fixture{
		urls:            resourceurl.New(testBaseURL),
		klanten:         newStubKlantRepo(),
		subjects:        newStubSubjectRepo(),
		contactMomenten: newStubContactMomentRepo(),
		verzoeken:       newStubVerzoekRepo(),
		objectContactMomenten: newStubRelationRepo(
			func(r *domain.ObjectContactMoment) string { return r.UUID },
			func(r *domain.ObjectContactMoment, f ports.ObjectContactMomentFilter) bool {
				return matches(f.Object, r.Object) && matches(f.ContactMoment, r.ContactMoment)
			}),
		objectVerzoeken: newStubRelationRepo(
			func(r *domain.ObjectVerzoek) string { return r.UUID },
			func(r *domain.ObjectVerzoek, f ports.ObjectVerzoekFilter) bool {
				return matches(f.Object, r.Object) && matches(f.Verzoek, r.Verzoek)
			}),
		informatieObjecten: &stubVIORepo{newStubRelationRepo(
			func(r *domain.VerzoekInformatieObject) string { return r.UUID },
			func(r *domain.VerzoekInformatieObject, f ports.VerzoekInformatieObjectFilter) bool {
				return matches(f.Verzoek, r.Verzoek) && matches(f.Informatieobject, r.Informatieobject)
			})},
		producten: newStubRelationRepo(
			func(r *domain.VerzoekProduct) string { return r.UUID },
			func(r *domain.VerzoekProduct, f ports.VerzoekProductFilter) bool {
				return matches(f.Verzoek, r.Verzoek) && matches(f.Product, r.Product) &&
					matches(f.ProductIdentificatieCode, r.ProductIdentificatieCode)
			}),
		verzoekContactMomenten: newStubRelationRepo(
			func(r *domain.VerzoekContactMoment) string { return r.UUID },
			func(r *domain.VerzoekContactMoment, f ports.VerzoekContactMomentFilter) bool {
				return matches(f.Verzoek, r.Verzoek) && matches(f.ContactMoment, r.ContactMoment)
			}),
		remote:    newStubRemote(),
		resources: &stubResources{invalid: make(map[string]string)},
		pending:   newStubPending(),
	}
	f.tx = &stubTx{stores: []snapshotter{
		f.klanten, f.subjects, f.contactMomenten, f.verzoeken,
		f.objectContactMomenten, f.objectVerzoeken, f.informatieObjecten,
		f.producten, f.verzoekContactMomenten,
	}}

	f.notifier = NewSyncNotifier(f.remote, f.pending, log)
	f.relValidator = NewRelationValidator(f.remote, f.resources, log)
	f.klantSvc = NewKlantService(f.klanten, f.subjects, f.tx, log)
	f.cmSvc = NewContactMomentService(f.contactMomenten, f.klanten, f.objectContactMomenten,
		f.verzoekContactMomenten, f.tx, f.notifier, f.pending, f.urls, log)
	f.verzoekSvc = NewVerzoekService(f.verzoeken, f.klanten, f.objectVerzoeken, f.informatieObjecten,
		f.producten, f.verzoekContactMomenten, f.tx, f.urls, log)
	f.relationSvc = NewObjectRelationService(f.objectContactMomenten, f.objectVerzoeken,
		f.contactMomenten, f.verzoeken, f.relValidator, f.urls, log)
	f.vioSvc = NewVerzoekInformatieObjectService(f.informatieObjecten, f.verzoeken, f.resources,
		f.notifier, f.pending, f.urls, log)
	f.linkSvc = NewVerzoekLinkService(f.producten, f.verzoekContactMomenten, f.verzoeken,
		f.contactMomenten, f.urls, log)
	return f
}

func ptr[T any](v T) *T { return &v }
