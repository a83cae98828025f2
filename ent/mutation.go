// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/channel"
	"github.com/channeling-app/reportpipe/ent/comment"
	"github.com/channeling-app/reportpipe/ent/idea"
	"github.com/channeling-app/reportpipe/ent/predicate"
	"github.com/channeling-app/reportpipe/ent/report"
	"github.com/channeling-app/reportpipe/ent/task"
	"github.com/channeling-app/reportpipe/ent/trendkeyword"
	"github.com/channeling-app/reportpipe/ent/video"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChannel      = "Channel"
	TypeComment      = "Comment"
	TypeIdea         = "Idea"
	TypeReport       = "Report"
	TypeTask         = "Task"
	TypeTrendKeyword = "TrendKeyword"
	TypeVideo        = "Video"
)

// ChannelMutation represents an operation that mutates the Channel nodes in the graph.
type ChannelMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	youtube_channel_id *string
	name               *string
	concept            *string
	target             *string
	channel_hash_tag   *string
	subscribe          *int64
	addsubscribe       *int64
	view               *int64
	addview            *int64
	video_count        *int
	addvideo_count     *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Channel, error)
	predicates         []predicate.Channel
}

var _ ent.Mutation = (*ChannelMutation)(nil)

// channelOption allows management of the mutation configuration using functional options.
type channelOption func(*ChannelMutation)

// newChannelMutation creates new mutation for the Channel entity.
func newChannelMutation(c config, op Op, opts ...channelOption) *ChannelMutation {
	m := &ChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChannelID sets the ID field of the mutation.
func withChannelID(id int) channelOption {
	return func(m *ChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *Channel
		)
		m.oldValue = func(ctx context.Context) (*Channel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Channel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChannel sets the old Channel of the mutation.
func withChannel(node *Channel) channelOption {
	return func(m *ChannelMutation) {
		m.oldValue = func(context.Context) (*Channel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChannelMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChannelMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Channel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetYoutubeChannelID sets the "youtube_channel_id" field.
func (m *ChannelMutation) SetYoutubeChannelID(s string) {
	m.youtube_channel_id = &s
}

// YoutubeChannelID returns the value of the "youtube_channel_id" field in the mutation.
func (m *ChannelMutation) YoutubeChannelID() (r string, exists bool) {
	v := m.youtube_channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldYoutubeChannelID returns the old "youtube_channel_id" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldYoutubeChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYoutubeChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYoutubeChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYoutubeChannelID: %w", err)
	}
	return oldValue.YoutubeChannelID, nil
}

// ResetYoutubeChannelID resets all changes to the "youtube_channel_id" field.
func (m *ChannelMutation) ResetYoutubeChannelID() {
	m.youtube_channel_id = nil
}

// SetName sets the "name" field.
func (m *ChannelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChannelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ChannelMutation) ResetName() {
	m.name = nil
}

// SetConcept sets the "concept" field.
func (m *ChannelMutation) SetConcept(s string) {
	m.concept = &s
}

// Concept returns the value of the "concept" field in the mutation.
func (m *ChannelMutation) Concept() (r string, exists bool) {
	v := m.concept
	if v == nil {
		return
	}
	return *v, true
}

// OldConcept returns the old "concept" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldConcept(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcept is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcept requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcept: %w", err)
	}
	return oldValue.Concept, nil
}

// ClearConcept clears the value of the "concept" field.
func (m *ChannelMutation) ClearConcept() {
	m.concept = nil
	m.clearedFields[channel.FieldConcept] = struct{}{}
}

// ConceptCleared returns if the "concept" field was cleared in this mutation.
func (m *ChannelMutation) ConceptCleared() bool {
	_, ok := m.clearedFields[channel.FieldConcept]
	return ok
}

// ResetConcept resets all changes to the "concept" field.
func (m *ChannelMutation) ResetConcept() {
	m.concept = nil
	delete(m.clearedFields, channel.FieldConcept)
}

// SetTarget sets the "target" field.
func (m *ChannelMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *ChannelMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ClearTarget clears the value of the "target" field.
func (m *ChannelMutation) ClearTarget() {
	m.target = nil
	m.clearedFields[channel.FieldTarget] = struct{}{}
}

// TargetCleared returns if the "target" field was cleared in this mutation.
func (m *ChannelMutation) TargetCleared() bool {
	_, ok := m.clearedFields[channel.FieldTarget]
	return ok
}

// ResetTarget resets all changes to the "target" field.
func (m *ChannelMutation) ResetTarget() {
	m.target = nil
	delete(m.clearedFields, channel.FieldTarget)
}

// SetChannelHashTag sets the "channel_hash_tag" field.
func (m *ChannelMutation) SetChannelHashTag(s string) {
	m.channel_hash_tag = &s
}

// ChannelHashTag returns the value of the "channel_hash_tag" field in the mutation.
func (m *ChannelMutation) ChannelHashTag() (r string, exists bool) {
	v := m.channel_hash_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelHashTag returns the old "channel_hash_tag" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldChannelHashTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelHashTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelHashTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelHashTag: %w", err)
	}
	return oldValue.ChannelHashTag, nil
}

// ClearChannelHashTag clears the value of the "channel_hash_tag" field.
func (m *ChannelMutation) ClearChannelHashTag() {
	m.channel_hash_tag = nil
	m.clearedFields[channel.FieldChannelHashTag] = struct{}{}
}

// ChannelHashTagCleared returns if the "channel_hash_tag" field was cleared in this mutation.
func (m *ChannelMutation) ChannelHashTagCleared() bool {
	_, ok := m.clearedFields[channel.FieldChannelHashTag]
	return ok
}

// ResetChannelHashTag resets all changes to the "channel_hash_tag" field.
func (m *ChannelMutation) ResetChannelHashTag() {
	m.channel_hash_tag = nil
	delete(m.clearedFields, channel.FieldChannelHashTag)
}

// SetSubscribe sets the "subscribe" field.
func (m *ChannelMutation) SetSubscribe(i int64) {
	m.subscribe = &i
	m.addsubscribe = nil
}

// Subscribe returns the value of the "subscribe" field in the mutation.
func (m *ChannelMutation) Subscribe() (r int64, exists bool) {
	v := m.subscribe
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscribe returns the old "subscribe" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldSubscribe(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscribe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscribe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscribe: %w", err)
	}
	return oldValue.Subscribe, nil
}

// AddSubscribe adds i to the "subscribe" field.
func (m *ChannelMutation) AddSubscribe(i int64) {
	if m.addsubscribe != nil {
		*m.addsubscribe += i
	} else {
		m.addsubscribe = &i
	}
}

// AddedSubscribe returns the value that was added to the "subscribe" field in this mutation.
func (m *ChannelMutation) AddedSubscribe() (r int64, exists bool) {
	v := m.addsubscribe
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubscribe clears the value of the "subscribe" field.
func (m *ChannelMutation) ClearSubscribe() {
	m.subscribe = nil
	m.addsubscribe = nil
	m.clearedFields[channel.FieldSubscribe] = struct{}{}
}

// SubscribeCleared returns if the "subscribe" field was cleared in this mutation.
func (m *ChannelMutation) SubscribeCleared() bool {
	_, ok := m.clearedFields[channel.FieldSubscribe]
	return ok
}

// ResetSubscribe resets all changes to the "subscribe" field.
func (m *ChannelMutation) ResetSubscribe() {
	m.subscribe = nil
	m.addsubscribe = nil
	delete(m.clearedFields, channel.FieldSubscribe)
}

// SetView sets the "view" field.
func (m *ChannelMutation) SetView(i int64) {
	m.view = &i
	m.addview = nil
}

// View returns the value of the "view" field in the mutation.
func (m *ChannelMutation) View() (r int64, exists bool) {
	v := m.view
	if v == nil {
		return
	}
	return *v, true
}

// OldView returns the old "view" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldView(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldView is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldView requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldView: %w", err)
	}
	return oldValue.View, nil
}

// AddView adds i to the "view" field.
func (m *ChannelMutation) AddView(i int64) {
	if m.addview != nil {
		*m.addview += i
	} else {
		m.addview = &i
	}
}

// AddedView returns the value that was added to the "view" field in this mutation.
func (m *ChannelMutation) AddedView() (r int64, exists bool) {
	v := m.addview
	if v == nil {
		return
	}
	return *v, true
}

// ClearView clears the value of the "view" field.
func (m *ChannelMutation) ClearView() {
	m.view = nil
	m.addview = nil
	m.clearedFields[channel.FieldView] = struct{}{}
}

// ViewCleared returns if the "view" field was cleared in this mutation.
func (m *ChannelMutation) ViewCleared() bool {
	_, ok := m.clearedFields[channel.FieldView]
	return ok
}

// ResetView resets all changes to the "view" field.
func (m *ChannelMutation) ResetView() {
	m.view = nil
	m.addview = nil
	delete(m.clearedFields, channel.FieldView)
}

// SetVideoCount sets the "video_count" field.
func (m *ChannelMutation) SetVideoCount(i int) {
	m.video_count = &i
	m.addvideo_count = nil
}

// VideoCount returns the value of the "video_count" field in the mutation.
func (m *ChannelMutation) VideoCount() (r int, exists bool) {
	v := m.video_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoCount returns the old "video_count" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldVideoCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoCount: %w", err)
	}
	return oldValue.VideoCount, nil
}

// AddVideoCount adds i to the "video_count" field.
func (m *ChannelMutation) AddVideoCount(i int) {
	if m.addvideo_count != nil {
		*m.addvideo_count += i
	} else {
		m.addvideo_count = &i
	}
}

// AddedVideoCount returns the value that was added to the "video_count" field in this mutation.
func (m *ChannelMutation) AddedVideoCount() (r int, exists bool) {
	v := m.addvideo_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearVideoCount clears the value of the "video_count" field.
func (m *ChannelMutation) ClearVideoCount() {
	m.video_count = nil
	m.addvideo_count = nil
	m.clearedFields[channel.FieldVideoCount] = struct{}{}
}

// VideoCountCleared returns if the "video_count" field was cleared in this mutation.
func (m *ChannelMutation) VideoCountCleared() bool {
	_, ok := m.clearedFields[channel.FieldVideoCount]
	return ok
}

// ResetVideoCount resets all changes to the "video_count" field.
func (m *ChannelMutation) ResetVideoCount() {
	m.video_count = nil
	m.addvideo_count = nil
	delete(m.clearedFields, channel.FieldVideoCount)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ChannelMutation builder.
func (m *ChannelMutation) Where(ps ...predicate.Channel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Channel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Channel).
func (m *ChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChannelMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.youtube_channel_id != nil {
		fields = append(fields, channel.FieldYoutubeChannelID)
	}
	if m.name != nil {
		fields = append(fields, channel.FieldName)
	}
	if m.concept != nil {
		fields = append(fields, channel.FieldConcept)
	}
	if m.target != nil {
		fields = append(fields, channel.FieldTarget)
	}
	if m.channel_hash_tag != nil {
		fields = append(fields, channel.FieldChannelHashTag)
	}
	if m.subscribe != nil {
		fields = append(fields, channel.FieldSubscribe)
	}
	if m.view != nil {
		fields = append(fields, channel.FieldView)
	}
	if m.video_count != nil {
		fields = append(fields, channel.FieldVideoCount)
	}
	if m.created_at != nil {
		fields = append(fields, channel.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case channel.FieldYoutubeChannelID:
		return m.YoutubeChannelID()
	case channel.FieldName:
		return m.Name()
	case channel.FieldConcept:
		return m.Concept()
	case channel.FieldTarget:
		return m.Target()
	case channel.FieldChannelHashTag:
		return m.ChannelHashTag()
	case channel.FieldSubscribe:
		return m.Subscribe()
	case channel.FieldView:
		return m.View()
	case channel.FieldVideoCount:
		return m.VideoCount()
	case channel.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case channel.FieldYoutubeChannelID:
		return m.OldYoutubeChannelID(ctx)
	case channel.FieldName:
		return m.OldName(ctx)
	case channel.FieldConcept:
		return m.OldConcept(ctx)
	case channel.FieldTarget:
		return m.OldTarget(ctx)
	case channel.FieldChannelHashTag:
		return m.OldChannelHashTag(ctx)
	case channel.FieldSubscribe:
		return m.OldSubscribe(ctx)
	case channel.FieldView:
		return m.OldView(ctx)
	case channel.FieldVideoCount:
		return m.OldVideoCount(ctx)
	case channel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Channel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case channel.FieldYoutubeChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYoutubeChannelID(v)
		return nil
	case channel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case channel.FieldConcept:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcept(v)
		return nil
	case channel.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case channel.FieldChannelHashTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelHashTag(v)
		return nil
	case channel.FieldSubscribe:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscribe(v)
		return nil
	case channel.FieldView:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetView(v)
		return nil
	case channel.FieldVideoCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoCount(v)
		return nil
	case channel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChannelMutation) AddedFields() []string {
	var fields []string
	if m.addsubscribe != nil {
		fields = append(fields, channel.FieldSubscribe)
	}
	if m.addview != nil {
		fields = append(fields, channel.FieldView)
	}
	if m.addvideo_count != nil {
		fields = append(fields, channel.FieldVideoCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChannelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case channel.FieldSubscribe:
		return m.AddedSubscribe()
	case channel.FieldView:
		return m.AddedView()
	case channel.FieldVideoCount:
		return m.AddedVideoCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case channel.FieldSubscribe:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubscribe(v)
		return nil
	case channel.FieldView:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddView(v)
		return nil
	case channel.FieldVideoCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVideoCount(v)
		return nil
	}
	return fmt.Errorf("unknown Channel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChannelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(channel.FieldConcept) {
		fields = append(fields, channel.FieldConcept)
	}
	if m.FieldCleared(channel.FieldTarget) {
		fields = append(fields, channel.FieldTarget)
	}
	if m.FieldCleared(channel.FieldChannelHashTag) {
		fields = append(fields, channel.FieldChannelHashTag)
	}
	if m.FieldCleared(channel.FieldSubscribe) {
		fields = append(fields, channel.FieldSubscribe)
	}
	if m.FieldCleared(channel.FieldView) {
		fields = append(fields, channel.FieldView)
	}
	if m.FieldCleared(channel.FieldVideoCount) {
		fields = append(fields, channel.FieldVideoCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChannelMutation) ClearField(name string) error {
	switch name {
	case channel.FieldConcept:
		m.ClearConcept()
		return nil
	case channel.FieldTarget:
		m.ClearTarget()
		return nil
	case channel.FieldChannelHashTag:
		m.ClearChannelHashTag()
		return nil
	case channel.FieldSubscribe:
		m.ClearSubscribe()
		return nil
	case channel.FieldView:
		m.ClearView()
		return nil
	case channel.FieldVideoCount:
		m.ClearVideoCount()
		return nil
	}
	return fmt.Errorf("unknown Channel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChannelMutation) ResetField(name string) error {
	switch name {
	case channel.FieldYoutubeChannelID:
		m.ResetYoutubeChannelID()
		return nil
	case channel.FieldName:
		m.ResetName()
		return nil
	case channel.FieldConcept:
		m.ResetConcept()
		return nil
	case channel.FieldTarget:
		m.ResetTarget()
		return nil
	case channel.FieldChannelHashTag:
		m.ResetChannelHashTag()
		return nil
	case channel.FieldSubscribe:
		m.ResetSubscribe()
		return nil
	case channel.FieldView:
		m.ResetView()
		return nil
	case channel.FieldVideoCount:
		m.ResetVideoCount()
		return nil
	case channel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChannelMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChannelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChannelMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChannelMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Channel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChannelMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Channel edge %s", name)
}

// CommentMutation represents an operation that mutates the Comment nodes in the graph.
type CommentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	report_id     *int
	addreport_id  *int
	comment_type  *comment.CommentType
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Comment, error)
	predicates    []predicate.Comment
}

var _ ent.Mutation = (*CommentMutation)(nil)

// commentOption allows management of the mutation configuration using functional options.
type commentOption func(*CommentMutation)

// newCommentMutation creates new mutation for the Comment entity.
func newCommentMutation(c config, op Op, opts ...commentOption) *CommentMutation {
	m := &CommentMutation{
		config:        c,
		op:            op,
		typ:           TypeComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommentID sets the ID field of the mutation.
func withCommentID(id int) commentOption {
	return func(m *CommentMutation) {
		var (
			err   error
			once  sync.Once
			value *Comment
		)
		m.oldValue = func(ctx context.Context) (*Comment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComment sets the old Comment of the mutation.
func withComment(node *Comment) commentOption {
	return func(m *CommentMutation) {
		m.oldValue = func(context.Context) (*Comment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *CommentMutation) SetReportID(i int) {
	m.report_id = &i
	m.addreport_id = nil
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *CommentMutation) ReportID() (r int, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldReportID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// AddReportID adds i to the "report_id" field.
func (m *CommentMutation) AddReportID(i int) {
	if m.addreport_id != nil {
		*m.addreport_id += i
	} else {
		m.addreport_id = &i
	}
}

// AddedReportID returns the value that was added to the "report_id" field in this mutation.
func (m *CommentMutation) AddedReportID() (r int, exists bool) {
	v := m.addreport_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetReportID resets all changes to the "report_id" field.
func (m *CommentMutation) ResetReportID() {
	m.report_id = nil
	m.addreport_id = nil
}

// SetCommentType sets the "comment_type" field.
func (m *CommentMutation) SetCommentType(ct comment.CommentType) {
	m.comment_type = &ct
}

// CommentType returns the value of the "comment_type" field in the mutation.
func (m *CommentMutation) CommentType() (r comment.CommentType, exists bool) {
	v := m.comment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentType returns the old "comment_type" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldCommentType(ctx context.Context) (v comment.CommentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentType: %w", err)
	}
	return oldValue.CommentType, nil
}

// ResetCommentType resets all changes to the "comment_type" field.
func (m *CommentMutation) ResetCommentType() {
	m.comment_type = nil
}

// SetContent sets the "content" field.
func (m *CommentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CommentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CommentMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CommentMutation builder.
func (m *CommentMutation) Where(ps ...predicate.Comment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comment).
func (m *CommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.report_id != nil {
		fields = append(fields, comment.FieldReportID)
	}
	if m.comment_type != nil {
		fields = append(fields, comment.FieldCommentType)
	}
	if m.content != nil {
		fields = append(fields, comment.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, comment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comment.FieldReportID:
		return m.ReportID()
	case comment.FieldCommentType:
		return m.CommentType()
	case comment.FieldContent:
		return m.Content()
	case comment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comment.FieldReportID:
		return m.OldReportID(ctx)
	case comment.FieldCommentType:
		return m.OldCommentType(ctx)
	case comment.FieldContent:
		return m.OldContent(ctx)
	case comment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Comment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comment.FieldReportID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case comment.FieldCommentType:
		v, ok := value.(comment.CommentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentType(v)
		return nil
	case comment.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case comment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommentMutation) AddedFields() []string {
	var fields []string
	if m.addreport_id != nil {
		fields = append(fields, comment.FieldReportID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case comment.FieldReportID:
		return m.AddedReportID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case comment.FieldReportID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReportID(v)
		return nil
	}
	return fmt.Errorf("unknown Comment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Comment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommentMutation) ResetField(name string) error {
	switch name {
	case comment.FieldReportID:
		m.ResetReportID()
		return nil
	case comment.FieldCommentType:
		m.ResetCommentType()
		return nil
	case comment.FieldContent:
		m.ResetContent()
		return nil
	case comment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Comment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Comment edge %s", name)
}

// IdeaMutation represents an operation that mutates the Idea nodes in the graph.
type IdeaMutation struct {
	config
	op                Op
	typ               string
	id                *int
	channel_id        *int
	addchannel_id     *int
	title             *string
	content           *string
	hash_tag          *string
	is_book_marked    *int
	addis_book_marked *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Idea, error)
	predicates        []predicate.Idea
}

var _ ent.Mutation = (*IdeaMutation)(nil)

// ideaOption allows management of the mutation configuration using functional options.
type ideaOption func(*IdeaMutation)

// newIdeaMutation creates new mutation for the Idea entity.
func newIdeaMutation(c config, op Op, opts ...ideaOption) *IdeaMutation {
	m := &IdeaMutation{
		config:        c,
		op:            op,
		typ:           TypeIdea,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdeaID sets the ID field of the mutation.
func withIdeaID(id int) ideaOption {
	return func(m *IdeaMutation) {
		var (
			err   error
			once  sync.Once
			value *Idea
		)
		m.oldValue = func(ctx context.Context) (*Idea, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Idea.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdea sets the old Idea of the mutation.
func withIdea(node *Idea) ideaOption {
	return func(m *IdeaMutation) {
		m.oldValue = func(context.Context) (*Idea, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdeaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdeaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdeaMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdeaMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Idea.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannelID sets the "channel_id" field.
func (m *IdeaMutation) SetChannelID(i int) {
	m.channel_id = &i
	m.addchannel_id = nil
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *IdeaMutation) ChannelID() (r int, exists bool) {
	v := m.channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldChannelID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// AddChannelID adds i to the "channel_id" field.
func (m *IdeaMutation) AddChannelID(i int) {
	if m.addchannel_id != nil {
		*m.addchannel_id += i
	} else {
		m.addchannel_id = &i
	}
}

// AddedChannelID returns the value that was added to the "channel_id" field in this mutation.
func (m *IdeaMutation) AddedChannelID() (r int, exists bool) {
	v := m.addchannel_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *IdeaMutation) ResetChannelID() {
	m.channel_id = nil
	m.addchannel_id = nil
}

// SetTitle sets the "title" field.
func (m *IdeaMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IdeaMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IdeaMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *IdeaMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *IdeaMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *IdeaMutation) ResetContent() {
	m.content = nil
}

// SetHashTag sets the "hash_tag" field.
func (m *IdeaMutation) SetHashTag(s string) {
	m.hash_tag = &s
}

// HashTag returns the value of the "hash_tag" field in the mutation.
func (m *IdeaMutation) HashTag() (r string, exists bool) {
	v := m.hash_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldHashTag returns the old "hash_tag" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldHashTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashTag: %w", err)
	}
	return oldValue.HashTag, nil
}

// ResetHashTag resets all changes to the "hash_tag" field.
func (m *IdeaMutation) ResetHashTag() {
	m.hash_tag = nil
}

// SetIsBookMarked sets the "is_book_marked" field.
func (m *IdeaMutation) SetIsBookMarked(i int) {
	m.is_book_marked = &i
	m.addis_book_marked = nil
}

// IsBookMarked returns the value of the "is_book_marked" field in the mutation.
func (m *IdeaMutation) IsBookMarked() (r int, exists bool) {
	v := m.is_book_marked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBookMarked returns the old "is_book_marked" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldIsBookMarked(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBookMarked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBookMarked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBookMarked: %w", err)
	}
	return oldValue.IsBookMarked, nil
}

// AddIsBookMarked adds i to the "is_book_marked" field.
func (m *IdeaMutation) AddIsBookMarked(i int) {
	if m.addis_book_marked != nil {
		*m.addis_book_marked += i
	} else {
		m.addis_book_marked = &i
	}
}

// AddedIsBookMarked returns the value that was added to the "is_book_marked" field in this mutation.
func (m *IdeaMutation) AddedIsBookMarked() (r int, exists bool) {
	v := m.addis_book_marked
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsBookMarked resets all changes to the "is_book_marked" field.
func (m *IdeaMutation) ResetIsBookMarked() {
	m.is_book_marked = nil
	m.addis_book_marked = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IdeaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdeaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdeaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IdeaMutation builder.
func (m *IdeaMutation) Where(ps ...predicate.Idea) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdeaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdeaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Idea, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdeaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdeaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Idea).
func (m *IdeaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdeaMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.channel_id != nil {
		fields = append(fields, idea.FieldChannelID)
	}
	if m.title != nil {
		fields = append(fields, idea.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, idea.FieldContent)
	}
	if m.hash_tag != nil {
		fields = append(fields, idea.FieldHashTag)
	}
	if m.is_book_marked != nil {
		fields = append(fields, idea.FieldIsBookMarked)
	}
	if m.created_at != nil {
		fields = append(fields, idea.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdeaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case idea.FieldChannelID:
		return m.ChannelID()
	case idea.FieldTitle:
		return m.Title()
	case idea.FieldContent:
		return m.Content()
	case idea.FieldHashTag:
		return m.HashTag()
	case idea.FieldIsBookMarked:
		return m.IsBookMarked()
	case idea.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdeaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case idea.FieldChannelID:
		return m.OldChannelID(ctx)
	case idea.FieldTitle:
		return m.OldTitle(ctx)
	case idea.FieldContent:
		return m.OldContent(ctx)
	case idea.FieldHashTag:
		return m.OldHashTag(ctx)
	case idea.FieldIsBookMarked:
		return m.OldIsBookMarked(ctx)
	case idea.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Idea field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdeaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case idea.FieldChannelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case idea.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case idea.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case idea.FieldHashTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashTag(v)
		return nil
	case idea.FieldIsBookMarked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBookMarked(v)
		return nil
	case idea.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Idea field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdeaMutation) AddedFields() []string {
	var fields []string
	if m.addchannel_id != nil {
		fields = append(fields, idea.FieldChannelID)
	}
	if m.addis_book_marked != nil {
		fields = append(fields, idea.FieldIsBookMarked)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdeaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case idea.FieldChannelID:
		return m.AddedChannelID()
	case idea.FieldIsBookMarked:
		return m.AddedIsBookMarked()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdeaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case idea.FieldChannelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChannelID(v)
		return nil
	case idea.FieldIsBookMarked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsBookMarked(v)
		return nil
	}
	return fmt.Errorf("unknown Idea numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdeaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdeaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdeaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Idea nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdeaMutation) ResetField(name string) error {
	switch name {
	case idea.FieldChannelID:
		m.ResetChannelID()
		return nil
	case idea.FieldTitle:
		m.ResetTitle()
		return nil
	case idea.FieldContent:
		m.ResetContent()
		return nil
	case idea.FieldHashTag:
		m.ResetHashTag()
		return nil
	case idea.FieldIsBookMarked:
		m.ResetIsBookMarked()
		return nil
	case idea.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Idea field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdeaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdeaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdeaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdeaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdeaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdeaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdeaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Idea unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdeaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Idea edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	video_id               *int
	addvideo_id            *int
	title                  *string
	view                   *int64
	addview                *int64
	view_channel_avg       *float64
	addview_channel_avg    *float64
	view_topic_avg         *float64
	addview_topic_avg      *float64
	like_count             *int64
	addlike_count          *int64
	like_channel_avg       *float64
	addlike_channel_avg    *float64
	like_topic_avg         *float64
	addlike_topic_avg      *float64
	comment_count          *int64
	addcomment_count       *int64
	comment_channel_avg    *float64
	addcomment_channel_avg *float64
	comment_topic_avg      *float64
	addcomment_topic_avg   *float64
	concept                *float64
	addconcept             *float64
	seo                    *float64
	addseo                 *float64
	revisit                *float64
	addrevisit             *float64
	summary                *string
	positive_comment       *int
	addpositive_comment    *int
	negative_comment       *int
	addnegative_comment    *int
	neutral_comment        *int
	addneutral_comment     *int
	advice_comment         *int
	addadvice_comment      *int
	leave_analyze          *string
	optimization           *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Report, error)
	predicates             []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id int) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVideoID sets the "video_id" field.
func (m *ReportMutation) SetVideoID(i int) {
	m.video_id = &i
	m.addvideo_id = nil
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *ReportMutation) VideoID() (r int, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldVideoID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// AddVideoID adds i to the "video_id" field.
func (m *ReportMutation) AddVideoID(i int) {
	if m.addvideo_id != nil {
		*m.addvideo_id += i
	} else {
		m.addvideo_id = &i
	}
}

// AddedVideoID returns the value that was added to the "video_id" field in this mutation.
func (m *ReportMutation) AddedVideoID() (r int, exists bool) {
	v := m.addvideo_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *ReportMutation) ResetVideoID() {
	m.video_id = nil
	m.addvideo_id = nil
}

// SetTitle sets the "title" field.
func (m *ReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ReportMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[report.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ReportMutation) TitleCleared() bool {
	_, ok := m.clearedFields[report.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, report.FieldTitle)
}

// SetView sets the "view" field.
func (m *ReportMutation) SetView(i int64) {
	m.view = &i
	m.addview = nil
}

// View returns the value of the "view" field in the mutation.
func (m *ReportMutation) View() (r int64, exists bool) {
	v := m.view
	if v == nil {
		return
	}
	return *v, true
}

// OldView returns the old "view" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldView(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldView is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldView requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldView: %w", err)
	}
	return oldValue.View, nil
}

// AddView adds i to the "view" field.
func (m *ReportMutation) AddView(i int64) {
	if m.addview != nil {
		*m.addview += i
	} else {
		m.addview = &i
	}
}

// AddedView returns the value that was added to the "view" field in this mutation.
func (m *ReportMutation) AddedView() (r int64, exists bool) {
	v := m.addview
	if v == nil {
		return
	}
	return *v, true
}

// ClearView clears the value of the "view" field.
func (m *ReportMutation) ClearView() {
	m.view = nil
	m.addview = nil
	m.clearedFields[report.FieldView] = struct{}{}
}

// ViewCleared returns if the "view" field was cleared in this mutation.
func (m *ReportMutation) ViewCleared() bool {
	_, ok := m.clearedFields[report.FieldView]
	return ok
}

// ResetView resets all changes to the "view" field.
func (m *ReportMutation) ResetView() {
	m.view = nil
	m.addview = nil
	delete(m.clearedFields, report.FieldView)
}

// SetViewChannelAvg sets the "view_channel_avg" field.
func (m *ReportMutation) SetViewChannelAvg(f float64) {
	m.view_channel_avg = &f
	m.addview_channel_avg = nil
}

// ViewChannelAvg returns the value of the "view_channel_avg" field in the mutation.
func (m *ReportMutation) ViewChannelAvg() (r float64, exists bool) {
	v := m.view_channel_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldViewChannelAvg returns the old "view_channel_avg" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldViewChannelAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewChannelAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewChannelAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewChannelAvg: %w", err)
	}
	return oldValue.ViewChannelAvg, nil
}

// AddViewChannelAvg adds f to the "view_channel_avg" field.
func (m *ReportMutation) AddViewChannelAvg(f float64) {
	if m.addview_channel_avg != nil {
		*m.addview_channel_avg += f
	} else {
		m.addview_channel_avg = &f
	}
}

// AddedViewChannelAvg returns the value that was added to the "view_channel_avg" field in this mutation.
func (m *ReportMutation) AddedViewChannelAvg() (r float64, exists bool) {
	v := m.addview_channel_avg
	if v == nil {
		return
	}
	return *v, true
}

// ClearViewChannelAvg clears the value of the "view_channel_avg" field.
func (m *ReportMutation) ClearViewChannelAvg() {
	m.view_channel_avg = nil
	m.addview_channel_avg = nil
	m.clearedFields[report.FieldViewChannelAvg] = struct{}{}
}

// ViewChannelAvgCleared returns if the "view_channel_avg" field was cleared in this mutation.
func (m *ReportMutation) ViewChannelAvgCleared() bool {
	_, ok := m.clearedFields[report.FieldViewChannelAvg]
	return ok
}

// ResetViewChannelAvg resets all changes to the "view_channel_avg" field.
func (m *ReportMutation) ResetViewChannelAvg() {
	m.view_channel_avg = nil
	m.addview_channel_avg = nil
	delete(m.clearedFields, report.FieldViewChannelAvg)
}

// SetViewTopicAvg sets the "view_topic_avg" field.
func (m *ReportMutation) SetViewTopicAvg(f float64) {
	m.view_topic_avg = &f
	m.addview_topic_avg = nil
}

// ViewTopicAvg returns the value of the "view_topic_avg" field in the mutation.
func (m *ReportMutation) ViewTopicAvg() (r float64, exists bool) {
	v := m.view_topic_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldViewTopicAvg returns the old "view_topic_avg" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldViewTopicAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewTopicAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewTopicAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewTopicAvg: %w", err)
	}
	return oldValue.ViewTopicAvg, nil
}

// AddViewTopicAvg adds f to the "view_topic_avg" field.
func (m *ReportMutation) AddViewTopicAvg(f float64) {
	if m.addview_topic_avg != nil {
		*m.addview_topic_avg += f
	} else {
		m.addview_topic_avg = &f
	}
}

// AddedViewTopicAvg returns the value that was added to the "view_topic_avg" field in this mutation.
func (m *ReportMutation) AddedViewTopicAvg() (r float64, exists bool) {
	v := m.addview_topic_avg
	if v == nil {
		return
	}
	return *v, true
}

// ClearViewTopicAvg clears the value of the "view_topic_avg" field.
func (m *ReportMutation) ClearViewTopicAvg() {
	m.view_topic_avg = nil
	m.addview_topic_avg = nil
	m.clearedFields[report.FieldViewTopicAvg] = struct{}{}
}

// ViewTopicAvgCleared returns if the "view_topic_avg" field was cleared in this mutation.
func (m *ReportMutation) ViewTopicAvgCleared() bool {
	_, ok := m.clearedFields[report.FieldViewTopicAvg]
	return ok
}

// ResetViewTopicAvg resets all changes to the "view_topic_avg" field.
func (m *ReportMutation) ResetViewTopicAvg() {
	m.view_topic_avg = nil
	m.addview_topic_avg = nil
	delete(m.clearedFields, report.FieldViewTopicAvg)
}

// SetLikeCount sets the "like_count" field.
func (m *ReportMutation) SetLikeCount(i int64) {
	m.like_count = &i
	m.addlike_count = nil
}

// LikeCount returns the value of the "like_count" field in the mutation.
func (m *ReportMutation) LikeCount() (r int64, exists bool) {
	v := m.like_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLikeCount returns the old "like_count" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLikeCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikeCount: %w", err)
	}
	return oldValue.LikeCount, nil
}

// AddLikeCount adds i to the "like_count" field.
func (m *ReportMutation) AddLikeCount(i int64) {
	if m.addlike_count != nil {
		*m.addlike_count += i
	} else {
		m.addlike_count = &i
	}
}

// AddedLikeCount returns the value that was added to the "like_count" field in this mutation.
func (m *ReportMutation) AddedLikeCount() (r int64, exists bool) {
	v := m.addlike_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearLikeCount clears the value of the "like_count" field.
func (m *ReportMutation) ClearLikeCount() {
	m.like_count = nil
	m.addlike_count = nil
	m.clearedFields[report.FieldLikeCount] = struct{}{}
}

// LikeCountCleared returns if the "like_count" field was cleared in this mutation.
func (m *ReportMutation) LikeCountCleared() bool {
	_, ok := m.clearedFields[report.FieldLikeCount]
	return ok
}

// ResetLikeCount resets all changes to the "like_count" field.
func (m *ReportMutation) ResetLikeCount() {
	m.like_count = nil
	m.addlike_count = nil
	delete(m.clearedFields, report.FieldLikeCount)
}

// SetLikeChannelAvg sets the "like_channel_avg" field.
func (m *ReportMutation) SetLikeChannelAvg(f float64) {
	m.like_channel_avg = &f
	m.addlike_channel_avg = nil
}

// LikeChannelAvg returns the value of the "like_channel_avg" field in the mutation.
func (m *ReportMutation) LikeChannelAvg() (r float64, exists bool) {
	v := m.like_channel_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldLikeChannelAvg returns the old "like_channel_avg" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLikeChannelAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikeChannelAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikeChannelAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikeChannelAvg: %w", err)
	}
	return oldValue.LikeChannelAvg, nil
}

// AddLikeChannelAvg adds f to the "like_channel_avg" field.
func (m *ReportMutation) AddLikeChannelAvg(f float64) {
	if m.addlike_channel_avg != nil {
		*m.addlike_channel_avg += f
	} else {
		m.addlike_channel_avg = &f
	}
}

// AddedLikeChannelAvg returns the value that was added to the "like_channel_avg" field in this mutation.
func (m *ReportMutation) AddedLikeChannelAvg() (r float64, exists bool) {
	v := m.addlike_channel_avg
	if v == nil {
		return
	}
	return *v, true
}

// ClearLikeChannelAvg clears the value of the "like_channel_avg" field.
func (m *ReportMutation) ClearLikeChannelAvg() {
	m.like_channel_avg = nil
	m.addlike_channel_avg = nil
	m.clearedFields[report.FieldLikeChannelAvg] = struct{}{}
}

// LikeChannelAvgCleared returns if the "like_channel_avg" field was cleared in this mutation.
func (m *ReportMutation) LikeChannelAvgCleared() bool {
	_, ok := m.clearedFields[report.FieldLikeChannelAvg]
	return ok
}

// ResetLikeChannelAvg resets all changes to the "like_channel_avg" field.
func (m *ReportMutation) ResetLikeChannelAvg() {
	m.like_channel_avg = nil
	m.addlike_channel_avg = nil
	delete(m.clearedFields, report.FieldLikeChannelAvg)
}

// SetLikeTopicAvg sets the "like_topic_avg" field.
func (m *ReportMutation) SetLikeTopicAvg(f float64) {
	m.like_topic_avg = &f
	m.addlike_topic_avg = nil
}

// LikeTopicAvg returns the value of the "like_topic_avg" field in the mutation.
func (m *ReportMutation) LikeTopicAvg() (r float64, exists bool) {
	v := m.like_topic_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldLikeTopicAvg returns the old "like_topic_avg" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLikeTopicAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikeTopicAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikeTopicAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikeTopicAvg: %w", err)
	}
	return oldValue.LikeTopicAvg, nil
}

// AddLikeTopicAvg adds f to the "like_topic_avg" field.
func (m *ReportMutation) AddLikeTopicAvg(f float64) {
	if m.addlike_topic_avg != nil {
		*m.addlike_topic_avg += f
	} else {
		m.addlike_topic_avg = &f
	}
}

// AddedLikeTopicAvg returns the value that was added to the "like_topic_avg" field in this mutation.
func (m *ReportMutation) AddedLikeTopicAvg() (r float64, exists bool) {
	v := m.addlike_topic_avg
	if v == nil {
		return
	}
	return *v, true
}

// ClearLikeTopicAvg clears the value of the "like_topic_avg" field.
func (m *ReportMutation) ClearLikeTopicAvg() {
	m.like_topic_avg = nil
	m.addlike_topic_avg = nil
	m.clearedFields[report.FieldLikeTopicAvg] = struct{}{}
}

// LikeTopicAvgCleared returns if the "like_topic_avg" field was cleared in this mutation.
func (m *ReportMutation) LikeTopicAvgCleared() bool {
	_, ok := m.clearedFields[report.FieldLikeTopicAvg]
	return ok
}

// ResetLikeTopicAvg resets all changes to the "like_topic_avg" field.
func (m *ReportMutation) ResetLikeTopicAvg() {
	m.like_topic_avg = nil
	m.addlike_topic_avg = nil
	delete(m.clearedFields, report.FieldLikeTopicAvg)
}

// SetCommentCount sets the "comment_count" field.
func (m *ReportMutation) SetCommentCount(i int64) {
	m.comment_count = &i
	m.addcomment_count = nil
}

// CommentCount returns the value of the "comment_count" field in the mutation.
func (m *ReportMutation) CommentCount() (r int64, exists bool) {
	v := m.comment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentCount returns the old "comment_count" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCommentCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentCount: %w", err)
	}
	return oldValue.CommentCount, nil
}

// AddCommentCount adds i to the "comment_count" field.
func (m *ReportMutation) AddCommentCount(i int64) {
	if m.addcomment_count != nil {
		*m.addcomment_count += i
	} else {
		m.addcomment_count = &i
	}
}

// AddedCommentCount returns the value that was added to the "comment_count" field in this mutation.
func (m *ReportMutation) AddedCommentCount() (r int64, exists bool) {
	v := m.addcomment_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommentCount clears the value of the "comment_count" field.
func (m *ReportMutation) ClearCommentCount() {
	m.comment_count = nil
	m.addcomment_count = nil
	m.clearedFields[report.FieldCommentCount] = struct{}{}
}

// CommentCountCleared returns if the "comment_count" field was cleared in this mutation.
func (m *ReportMutation) CommentCountCleared() bool {
	_, ok := m.clearedFields[report.FieldCommentCount]
	return ok
}

// ResetCommentCount resets all changes to the "comment_count" field.
func (m *ReportMutation) ResetCommentCount() {
	m.comment_count = nil
	m.addcomment_count = nil
	delete(m.clearedFields, report.FieldCommentCount)
}

// SetCommentChannelAvg sets the "comment_channel_avg" field.
func (m *ReportMutation) SetCommentChannelAvg(f float64) {
	m.comment_channel_avg = &f
	m.addcomment_channel_avg = nil
}

// CommentChannelAvg returns the value of the "comment_channel_avg" field in the mutation.
func (m *ReportMutation) CommentChannelAvg() (r float64, exists bool) {
	v := m.comment_channel_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentChannelAvg returns the old "comment_channel_avg" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCommentChannelAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentChannelAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentChannelAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentChannelAvg: %w", err)
	}
	return oldValue.CommentChannelAvg, nil
}

// AddCommentChannelAvg adds f to the "comment_channel_avg" field.
func (m *ReportMutation) AddCommentChannelAvg(f float64) {
	if m.addcomment_channel_avg != nil {
		*m.addcomment_channel_avg += f
	} else {
		m.addcomment_channel_avg = &f
	}
}

// AddedCommentChannelAvg returns the value that was added to the "comment_channel_avg" field in this mutation.
func (m *ReportMutation) AddedCommentChannelAvg() (r float64, exists bool) {
	v := m.addcomment_channel_avg
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommentChannelAvg clears the value of the "comment_channel_avg" field.
func (m *ReportMutation) ClearCommentChannelAvg() {
	m.comment_channel_avg = nil
	m.addcomment_channel_avg = nil
	m.clearedFields[report.FieldCommentChannelAvg] = struct{}{}
}

// CommentChannelAvgCleared returns if the "comment_channel_avg" field was cleared in this mutation.
func (m *ReportMutation) CommentChannelAvgCleared() bool {
	_, ok := m.clearedFields[report.FieldCommentChannelAvg]
	return ok
}

// ResetCommentChannelAvg resets all changes to the "comment_channel_avg" field.
func (m *ReportMutation) ResetCommentChannelAvg() {
	m.comment_channel_avg = nil
	m.addcomment_channel_avg = nil
	delete(m.clearedFields, report.FieldCommentChannelAvg)
}

// SetCommentTopicAvg sets the "comment_topic_avg" field.
func (m *ReportMutation) SetCommentTopicAvg(f float64) {
	m.comment_topic_avg = &f
	m.addcomment_topic_avg = nil
}

// CommentTopicAvg returns the value of the "comment_topic_avg" field in the mutation.
func (m *ReportMutation) CommentTopicAvg() (r float64, exists bool) {
	v := m.comment_topic_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentTopicAvg returns the old "comment_topic_avg" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCommentTopicAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentTopicAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentTopicAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentTopicAvg: %w", err)
	}
	return oldValue.CommentTopicAvg, nil
}

// AddCommentTopicAvg adds f to the "comment_topic_avg" field.
func (m *ReportMutation) AddCommentTopicAvg(f float64) {
	if m.addcomment_topic_avg != nil {
		*m.addcomment_topic_avg += f
	} else {
		m.addcomment_topic_avg = &f
	}
}

// AddedCommentTopicAvg returns the value that was added to the "comment_topic_avg" field in this mutation.
func (m *ReportMutation) AddedCommentTopicAvg() (r float64, exists bool) {
	v := m.addcomment_topic_avg
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommentTopicAvg clears the value of the "comment_topic_avg" field.
func (m *ReportMutation) ClearCommentTopicAvg() {
	m.comment_topic_avg = nil
	m.addcomment_topic_avg = nil
	m.clearedFields[report.FieldCommentTopicAvg] = struct{}{}
}

// CommentTopicAvgCleared returns if the "comment_topic_avg" field was cleared in this mutation.
func (m *ReportMutation) CommentTopicAvgCleared() bool {
	_, ok := m.clearedFields[report.FieldCommentTopicAvg]
	return ok
}

// ResetCommentTopicAvg resets all changes to the "comment_topic_avg" field.
func (m *ReportMutation) ResetCommentTopicAvg() {
	m.comment_topic_avg = nil
	m.addcomment_topic_avg = nil
	delete(m.clearedFields, report.FieldCommentTopicAvg)
}

// SetConcept sets the "concept" field.
func (m *ReportMutation) SetConcept(f float64) {
	m.concept = &f
	m.addconcept = nil
}

// Concept returns the value of the "concept" field in the mutation.
func (m *ReportMutation) Concept() (r float64, exists bool) {
	v := m.concept
	if v == nil {
		return
	}
	return *v, true
}

// OldConcept returns the old "concept" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldConcept(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcept is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcept requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcept: %w", err)
	}
	return oldValue.Concept, nil
}

// AddConcept adds f to the "concept" field.
func (m *ReportMutation) AddConcept(f float64) {
	if m.addconcept != nil {
		*m.addconcept += f
	} else {
		m.addconcept = &f
	}
}

// AddedConcept returns the value that was added to the "concept" field in this mutation.
func (m *ReportMutation) AddedConcept() (r float64, exists bool) {
	v := m.addconcept
	if v == nil {
		return
	}
	return *v, true
}

// ClearConcept clears the value of the "concept" field.
func (m *ReportMutation) ClearConcept() {
	m.concept = nil
	m.addconcept = nil
	m.clearedFields[report.FieldConcept] = struct{}{}
}

// ConceptCleared returns if the "concept" field was cleared in this mutation.
func (m *ReportMutation) ConceptCleared() bool {
	_, ok := m.clearedFields[report.FieldConcept]
	return ok
}

// ResetConcept resets all changes to the "concept" field.
func (m *ReportMutation) ResetConcept() {
	m.concept = nil
	m.addconcept = nil
	delete(m.clearedFields, report.FieldConcept)
}

// SetSeo sets the "seo" field.
func (m *ReportMutation) SetSeo(f float64) {
	m.seo = &f
	m.addseo = nil
}

// Seo returns the value of the "seo" field in the mutation.
func (m *ReportMutation) Seo() (r float64, exists bool) {
	v := m.seo
	if v == nil {
		return
	}
	return *v, true
}

// OldSeo returns the old "seo" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSeo(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeo: %w", err)
	}
	return oldValue.Seo, nil
}

// AddSeo adds f to the "seo" field.
func (m *ReportMutation) AddSeo(f float64) {
	if m.addseo != nil {
		*m.addseo += f
	} else {
		m.addseo = &f
	}
}

// AddedSeo returns the value that was added to the "seo" field in this mutation.
func (m *ReportMutation) AddedSeo() (r float64, exists bool) {
	v := m.addseo
	if v == nil {
		return
	}
	return *v, true
}

// ClearSeo clears the value of the "seo" field.
func (m *ReportMutation) ClearSeo() {
	m.seo = nil
	m.addseo = nil
	m.clearedFields[report.FieldSeo] = struct{}{}
}

// SeoCleared returns if the "seo" field was cleared in this mutation.
func (m *ReportMutation) SeoCleared() bool {
	_, ok := m.clearedFields[report.FieldSeo]
	return ok
}

// ResetSeo resets all changes to the "seo" field.
func (m *ReportMutation) ResetSeo() {
	m.seo = nil
	m.addseo = nil
	delete(m.clearedFields, report.FieldSeo)
}

// SetRevisit sets the "revisit" field.
func (m *ReportMutation) SetRevisit(f float64) {
	m.revisit = &f
	m.addrevisit = nil
}

// Revisit returns the value of the "revisit" field in the mutation.
func (m *ReportMutation) Revisit() (r float64, exists bool) {
	v := m.revisit
	if v == nil {
		return
	}
	return *v, true
}

// OldRevisit returns the old "revisit" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldRevisit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevisit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevisit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevisit: %w", err)
	}
	return oldValue.Revisit, nil
}

// AddRevisit adds f to the "revisit" field.
func (m *ReportMutation) AddRevisit(f float64) {
	if m.addrevisit != nil {
		*m.addrevisit += f
	} else {
		m.addrevisit = &f
	}
}

// AddedRevisit returns the value that was added to the "revisit" field in this mutation.
func (m *ReportMutation) AddedRevisit() (r float64, exists bool) {
	v := m.addrevisit
	if v == nil {
		return
	}
	return *v, true
}

// ClearRevisit clears the value of the "revisit" field.
func (m *ReportMutation) ClearRevisit() {
	m.revisit = nil
	m.addrevisit = nil
	m.clearedFields[report.FieldRevisit] = struct{}{}
}

// RevisitCleared returns if the "revisit" field was cleared in this mutation.
func (m *ReportMutation) RevisitCleared() bool {
	_, ok := m.clearedFields[report.FieldRevisit]
	return ok
}

// ResetRevisit resets all changes to the "revisit" field.
func (m *ReportMutation) ResetRevisit() {
	m.revisit = nil
	m.addrevisit = nil
	delete(m.clearedFields, report.FieldRevisit)
}

// SetSummary sets the "summary" field.
func (m *ReportMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ReportMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ReportMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[report.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ReportMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[report.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ReportMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, report.FieldSummary)
}

// SetPositiveComment sets the "positive_comment" field.
func (m *ReportMutation) SetPositiveComment(i int) {
	m.positive_comment = &i
	m.addpositive_comment = nil
}

// PositiveComment returns the value of the "positive_comment" field in the mutation.
func (m *ReportMutation) PositiveComment() (r int, exists bool) {
	v := m.positive_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldPositiveComment returns the old "positive_comment" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldPositiveComment(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositiveComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositiveComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositiveComment: %w", err)
	}
	return oldValue.PositiveComment, nil
}

// AddPositiveComment adds i to the "positive_comment" field.
func (m *ReportMutation) AddPositiveComment(i int) {
	if m.addpositive_comment != nil {
		*m.addpositive_comment += i
	} else {
		m.addpositive_comment = &i
	}
}

// AddedPositiveComment returns the value that was added to the "positive_comment" field in this mutation.
func (m *ReportMutation) AddedPositiveComment() (r int, exists bool) {
	v := m.addpositive_comment
	if v == nil {
		return
	}
	return *v, true
}

// ClearPositiveComment clears the value of the "positive_comment" field.
func (m *ReportMutation) ClearPositiveComment() {
	m.positive_comment = nil
	m.addpositive_comment = nil
	m.clearedFields[report.FieldPositiveComment] = struct{}{}
}

// PositiveCommentCleared returns if the "positive_comment" field was cleared in this mutation.
func (m *ReportMutation) PositiveCommentCleared() bool {
	_, ok := m.clearedFields[report.FieldPositiveComment]
	return ok
}

// ResetPositiveComment resets all changes to the "positive_comment" field.
func (m *ReportMutation) ResetPositiveComment() {
	m.positive_comment = nil
	m.addpositive_comment = nil
	delete(m.clearedFields, report.FieldPositiveComment)
}

// SetNegativeComment sets the "negative_comment" field.
func (m *ReportMutation) SetNegativeComment(i int) {
	m.negative_comment = &i
	m.addnegative_comment = nil
}

// NegativeComment returns the value of the "negative_comment" field in the mutation.
func (m *ReportMutation) NegativeComment() (r int, exists bool) {
	v := m.negative_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldNegativeComment returns the old "negative_comment" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldNegativeComment(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNegativeComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNegativeComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNegativeComment: %w", err)
	}
	return oldValue.NegativeComment, nil
}

// AddNegativeComment adds i to the "negative_comment" field.
func (m *ReportMutation) AddNegativeComment(i int) {
	if m.addnegative_comment != nil {
		*m.addnegative_comment += i
	} else {
		m.addnegative_comment = &i
	}
}

// AddedNegativeComment returns the value that was added to the "negative_comment" field in this mutation.
func (m *ReportMutation) AddedNegativeComment() (r int, exists bool) {
	v := m.addnegative_comment
	if v == nil {
		return
	}
	return *v, true
}

// ClearNegativeComment clears the value of the "negative_comment" field.
func (m *ReportMutation) ClearNegativeComment() {
	m.negative_comment = nil
	m.addnegative_comment = nil
	m.clearedFields[report.FieldNegativeComment] = struct{}{}
}

// NegativeCommentCleared returns if the "negative_comment" field was cleared in this mutation.
func (m *ReportMutation) NegativeCommentCleared() bool {
	_, ok := m.clearedFields[report.FieldNegativeComment]
	return ok
}

// ResetNegativeComment resets all changes to the "negative_comment" field.
func (m *ReportMutation) ResetNegativeComment() {
	m.negative_comment = nil
	m.addnegative_comment = nil
	delete(m.clearedFields, report.FieldNegativeComment)
}

// SetNeutralComment sets the "neutral_comment" field.
func (m *ReportMutation) SetNeutralComment(i int) {
	m.neutral_comment = &i
	m.addneutral_comment = nil
}

// NeutralComment returns the value of the "neutral_comment" field in the mutation.
func (m *ReportMutation) NeutralComment() (r int, exists bool) {
	v := m.neutral_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldNeutralComment returns the old "neutral_comment" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldNeutralComment(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeutralComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeutralComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeutralComment: %w", err)
	}
	return oldValue.NeutralComment, nil
}

// AddNeutralComment adds i to the "neutral_comment" field.
func (m *ReportMutation) AddNeutralComment(i int) {
	if m.addneutral_comment != nil {
		*m.addneutral_comment += i
	} else {
		m.addneutral_comment = &i
	}
}

// AddedNeutralComment returns the value that was added to the "neutral_comment" field in this mutation.
func (m *ReportMutation) AddedNeutralComment() (r int, exists bool) {
	v := m.addneutral_comment
	if v == nil {
		return
	}
	return *v, true
}

// ClearNeutralComment clears the value of the "neutral_comment" field.
func (m *ReportMutation) ClearNeutralComment() {
	m.neutral_comment = nil
	m.addneutral_comment = nil
	m.clearedFields[report.FieldNeutralComment] = struct{}{}
}

// NeutralCommentCleared returns if the "neutral_comment" field was cleared in this mutation.
func (m *ReportMutation) NeutralCommentCleared() bool {
	_, ok := m.clearedFields[report.FieldNeutralComment]
	return ok
}

// ResetNeutralComment resets all changes to the "neutral_comment" field.
func (m *ReportMutation) ResetNeutralComment() {
	m.neutral_comment = nil
	m.addneutral_comment = nil
	delete(m.clearedFields, report.FieldNeutralComment)
}

// SetAdviceComment sets the "advice_comment" field.
func (m *ReportMutation) SetAdviceComment(i int) {
	m.advice_comment = &i
	m.addadvice_comment = nil
}

// AdviceComment returns the value of the "advice_comment" field in the mutation.
func (m *ReportMutation) AdviceComment() (r int, exists bool) {
	v := m.advice_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldAdviceComment returns the old "advice_comment" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldAdviceComment(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdviceComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdviceComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdviceComment: %w", err)
	}
	return oldValue.AdviceComment, nil
}

// AddAdviceComment adds i to the "advice_comment" field.
func (m *ReportMutation) AddAdviceComment(i int) {
	if m.addadvice_comment != nil {
		*m.addadvice_comment += i
	} else {
		m.addadvice_comment = &i
	}
}

// AddedAdviceComment returns the value that was added to the "advice_comment" field in this mutation.
func (m *ReportMutation) AddedAdviceComment() (r int, exists bool) {
	v := m.addadvice_comment
	if v == nil {
		return
	}
	return *v, true
}

// ClearAdviceComment clears the value of the "advice_comment" field.
func (m *ReportMutation) ClearAdviceComment() {
	m.advice_comment = nil
	m.addadvice_comment = nil
	m.clearedFields[report.FieldAdviceComment] = struct{}{}
}

// AdviceCommentCleared returns if the "advice_comment" field was cleared in this mutation.
func (m *ReportMutation) AdviceCommentCleared() bool {
	_, ok := m.clearedFields[report.FieldAdviceComment]
	return ok
}

// ResetAdviceComment resets all changes to the "advice_comment" field.
func (m *ReportMutation) ResetAdviceComment() {
	m.advice_comment = nil
	m.addadvice_comment = nil
	delete(m.clearedFields, report.FieldAdviceComment)
}

// SetLeaveAnalyze sets the "leave_analyze" field.
func (m *ReportMutation) SetLeaveAnalyze(s string) {
	m.leave_analyze = &s
}

// LeaveAnalyze returns the value of the "leave_analyze" field in the mutation.
func (m *ReportMutation) LeaveAnalyze() (r string, exists bool) {
	v := m.leave_analyze
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaveAnalyze returns the old "leave_analyze" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLeaveAnalyze(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaveAnalyze is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaveAnalyze requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaveAnalyze: %w", err)
	}
	return oldValue.LeaveAnalyze, nil
}

// ClearLeaveAnalyze clears the value of the "leave_analyze" field.
func (m *ReportMutation) ClearLeaveAnalyze() {
	m.leave_analyze = nil
	m.clearedFields[report.FieldLeaveAnalyze] = struct{}{}
}

// LeaveAnalyzeCleared returns if the "leave_analyze" field was cleared in this mutation.
func (m *ReportMutation) LeaveAnalyzeCleared() bool {
	_, ok := m.clearedFields[report.FieldLeaveAnalyze]
	return ok
}

// ResetLeaveAnalyze resets all changes to the "leave_analyze" field.
func (m *ReportMutation) ResetLeaveAnalyze() {
	m.leave_analyze = nil
	delete(m.clearedFields, report.FieldLeaveAnalyze)
}

// SetOptimization sets the "optimization" field.
func (m *ReportMutation) SetOptimization(s string) {
	m.optimization = &s
}

// Optimization returns the value of the "optimization" field in the mutation.
func (m *ReportMutation) Optimization() (r string, exists bool) {
	v := m.optimization
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimization returns the old "optimization" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldOptimization(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimization: %w", err)
	}
	return oldValue.Optimization, nil
}

// ClearOptimization clears the value of the "optimization" field.
func (m *ReportMutation) ClearOptimization() {
	m.optimization = nil
	m.clearedFields[report.FieldOptimization] = struct{}{}
}

// OptimizationCleared returns if the "optimization" field was cleared in this mutation.
func (m *ReportMutation) OptimizationCleared() bool {
	_, ok := m.clearedFields[report.FieldOptimization]
	return ok
}

// ResetOptimization resets all changes to the "optimization" field.
func (m *ReportMutation) ResetOptimization() {
	m.optimization = nil
	delete(m.clearedFields, report.FieldOptimization)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.video_id != nil {
		fields = append(fields, report.FieldVideoID)
	}
	if m.title != nil {
		fields = append(fields, report.FieldTitle)
	}
	if m.view != nil {
		fields = append(fields, report.FieldView)
	}
	if m.view_channel_avg != nil {
		fields = append(fields, report.FieldViewChannelAvg)
	}
	if m.view_topic_avg != nil {
		fields = append(fields, report.FieldViewTopicAvg)
	}
	if m.like_count != nil {
		fields = append(fields, report.FieldLikeCount)
	}
	if m.like_channel_avg != nil {
		fields = append(fields, report.FieldLikeChannelAvg)
	}
	if m.like_topic_avg != nil {
		fields = append(fields, report.FieldLikeTopicAvg)
	}
	if m.comment_count != nil {
		fields = append(fields, report.FieldCommentCount)
	}
	if m.comment_channel_avg != nil {
		fields = append(fields, report.FieldCommentChannelAvg)
	}
	if m.comment_topic_avg != nil {
		fields = append(fields, report.FieldCommentTopicAvg)
	}
	if m.concept != nil {
		fields = append(fields, report.FieldConcept)
	}
	if m.seo != nil {
		fields = append(fields, report.FieldSeo)
	}
	if m.revisit != nil {
		fields = append(fields, report.FieldRevisit)
	}
	if m.summary != nil {
		fields = append(fields, report.FieldSummary)
	}
	if m.positive_comment != nil {
		fields = append(fields, report.FieldPositiveComment)
	}
	if m.negative_comment != nil {
		fields = append(fields, report.FieldNegativeComment)
	}
	if m.neutral_comment != nil {
		fields = append(fields, report.FieldNeutralComment)
	}
	if m.advice_comment != nil {
		fields = append(fields, report.FieldAdviceComment)
	}
	if m.leave_analyze != nil {
		fields = append(fields, report.FieldLeaveAnalyze)
	}
	if m.optimization != nil {
		fields = append(fields, report.FieldOptimization)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldVideoID:
		return m.VideoID()
	case report.FieldTitle:
		return m.Title()
	case report.FieldView:
		return m.View()
	case report.FieldViewChannelAvg:
		return m.ViewChannelAvg()
	case report.FieldViewTopicAvg:
		return m.ViewTopicAvg()
	case report.FieldLikeCount:
		return m.LikeCount()
	case report.FieldLikeChannelAvg:
		return m.LikeChannelAvg()
	case report.FieldLikeTopicAvg:
		return m.LikeTopicAvg()
	case report.FieldCommentCount:
		return m.CommentCount()
	case report.FieldCommentChannelAvg:
		return m.CommentChannelAvg()
	case report.FieldCommentTopicAvg:
		return m.CommentTopicAvg()
	case report.FieldConcept:
		return m.Concept()
	case report.FieldSeo:
		return m.Seo()
	case report.FieldRevisit:
		return m.Revisit()
	case report.FieldSummary:
		return m.Summary()
	case report.FieldPositiveComment:
		return m.PositiveComment()
	case report.FieldNegativeComment:
		return m.NegativeComment()
	case report.FieldNeutralComment:
		return m.NeutralComment()
	case report.FieldAdviceComment:
		return m.AdviceComment()
	case report.FieldLeaveAnalyze:
		return m.LeaveAnalyze()
	case report.FieldOptimization:
		return m.Optimization()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldVideoID:
		return m.OldVideoID(ctx)
	case report.FieldTitle:
		return m.OldTitle(ctx)
	case report.FieldView:
		return m.OldView(ctx)
	case report.FieldViewChannelAvg:
		return m.OldViewChannelAvg(ctx)
	case report.FieldViewTopicAvg:
		return m.OldViewTopicAvg(ctx)
	case report.FieldLikeCount:
		return m.OldLikeCount(ctx)
	case report.FieldLikeChannelAvg:
		return m.OldLikeChannelAvg(ctx)
	case report.FieldLikeTopicAvg:
		return m.OldLikeTopicAvg(ctx)
	case report.FieldCommentCount:
		return m.OldCommentCount(ctx)
	case report.FieldCommentChannelAvg:
		return m.OldCommentChannelAvg(ctx)
	case report.FieldCommentTopicAvg:
		return m.OldCommentTopicAvg(ctx)
	case report.FieldConcept:
		return m.OldConcept(ctx)
	case report.FieldSeo:
		return m.OldSeo(ctx)
	case report.FieldRevisit:
		return m.OldRevisit(ctx)
	case report.FieldSummary:
		return m.OldSummary(ctx)
	case report.FieldPositiveComment:
		return m.OldPositiveComment(ctx)
	case report.FieldNegativeComment:
		return m.OldNegativeComment(ctx)
	case report.FieldNeutralComment:
		return m.OldNeutralComment(ctx)
	case report.FieldAdviceComment:
		return m.OldAdviceComment(ctx)
	case report.FieldLeaveAnalyze:
		return m.OldLeaveAnalyze(ctx)
	case report.FieldOptimization:
		return m.OldOptimization(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldVideoID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case report.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case report.FieldView:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetView(v)
		return nil
	case report.FieldViewChannelAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewChannelAvg(v)
		return nil
	case report.FieldViewTopicAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewTopicAvg(v)
		return nil
	case report.FieldLikeCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikeCount(v)
		return nil
	case report.FieldLikeChannelAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikeChannelAvg(v)
		return nil
	case report.FieldLikeTopicAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikeTopicAvg(v)
		return nil
	case report.FieldCommentCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentCount(v)
		return nil
	case report.FieldCommentChannelAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentChannelAvg(v)
		return nil
	case report.FieldCommentTopicAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentTopicAvg(v)
		return nil
	case report.FieldConcept:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcept(v)
		return nil
	case report.FieldSeo:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeo(v)
		return nil
	case report.FieldRevisit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevisit(v)
		return nil
	case report.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case report.FieldPositiveComment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositiveComment(v)
		return nil
	case report.FieldNegativeComment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNegativeComment(v)
		return nil
	case report.FieldNeutralComment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeutralComment(v)
		return nil
	case report.FieldAdviceComment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdviceComment(v)
		return nil
	case report.FieldLeaveAnalyze:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaveAnalyze(v)
		return nil
	case report.FieldOptimization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimization(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	var fields []string
	if m.addvideo_id != nil {
		fields = append(fields, report.FieldVideoID)
	}
	if m.addview != nil {
		fields = append(fields, report.FieldView)
	}
	if m.addview_channel_avg != nil {
		fields = append(fields, report.FieldViewChannelAvg)
	}
	if m.addview_topic_avg != nil {
		fields = append(fields, report.FieldViewTopicAvg)
	}
	if m.addlike_count != nil {
		fields = append(fields, report.FieldLikeCount)
	}
	if m.addlike_channel_avg != nil {
		fields = append(fields, report.FieldLikeChannelAvg)
	}
	if m.addlike_topic_avg != nil {
		fields = append(fields, report.FieldLikeTopicAvg)
	}
	if m.addcomment_count != nil {
		fields = append(fields, report.FieldCommentCount)
	}
	if m.addcomment_channel_avg != nil {
		fields = append(fields, report.FieldCommentChannelAvg)
	}
	if m.addcomment_topic_avg != nil {
		fields = append(fields, report.FieldCommentTopicAvg)
	}
	if m.addconcept != nil {
		fields = append(fields, report.FieldConcept)
	}
	if m.addseo != nil {
		fields = append(fields, report.FieldSeo)
	}
	if m.addrevisit != nil {
		fields = append(fields, report.FieldRevisit)
	}
	if m.addpositive_comment != nil {
		fields = append(fields, report.FieldPositiveComment)
	}
	if m.addnegative_comment != nil {
		fields = append(fields, report.FieldNegativeComment)
	}
	if m.addneutral_comment != nil {
		fields = append(fields, report.FieldNeutralComment)
	}
	if m.addadvice_comment != nil {
		fields = append(fields, report.FieldAdviceComment)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case report.FieldVideoID:
		return m.AddedVideoID()
	case report.FieldView:
		return m.AddedView()
	case report.FieldViewChannelAvg:
		return m.AddedViewChannelAvg()
	case report.FieldViewTopicAvg:
		return m.AddedViewTopicAvg()
	case report.FieldLikeCount:
		return m.AddedLikeCount()
	case report.FieldLikeChannelAvg:
		return m.AddedLikeChannelAvg()
	case report.FieldLikeTopicAvg:
		return m.AddedLikeTopicAvg()
	case report.FieldCommentCount:
		return m.AddedCommentCount()
	case report.FieldCommentChannelAvg:
		return m.AddedCommentChannelAvg()
	case report.FieldCommentTopicAvg:
		return m.AddedCommentTopicAvg()
	case report.FieldConcept:
		return m.AddedConcept()
	case report.FieldSeo:
		return m.AddedSeo()
	case report.FieldRevisit:
		return m.AddedRevisit()
	case report.FieldPositiveComment:
		return m.AddedPositiveComment()
	case report.FieldNegativeComment:
		return m.AddedNegativeComment()
	case report.FieldNeutralComment:
		return m.AddedNeutralComment()
	case report.FieldAdviceComment:
		return m.AddedAdviceComment()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case report.FieldVideoID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVideoID(v)
		return nil
	case report.FieldView:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddView(v)
		return nil
	case report.FieldViewChannelAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViewChannelAvg(v)
		return nil
	case report.FieldViewTopicAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViewTopicAvg(v)
		return nil
	case report.FieldLikeCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikeCount(v)
		return nil
	case report.FieldLikeChannelAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikeChannelAvg(v)
		return nil
	case report.FieldLikeTopicAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikeTopicAvg(v)
		return nil
	case report.FieldCommentCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentCount(v)
		return nil
	case report.FieldCommentChannelAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentChannelAvg(v)
		return nil
	case report.FieldCommentTopicAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentTopicAvg(v)
		return nil
	case report.FieldConcept:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConcept(v)
		return nil
	case report.FieldSeo:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeo(v)
		return nil
	case report.FieldRevisit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevisit(v)
		return nil
	case report.FieldPositiveComment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPositiveComment(v)
		return nil
	case report.FieldNegativeComment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNegativeComment(v)
		return nil
	case report.FieldNeutralComment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNeutralComment(v)
		return nil
	case report.FieldAdviceComment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdviceComment(v)
		return nil
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldTitle) {
		fields = append(fields, report.FieldTitle)
	}
	if m.FieldCleared(report.FieldView) {
		fields = append(fields, report.FieldView)
	}
	if m.FieldCleared(report.FieldViewChannelAvg) {
		fields = append(fields, report.FieldViewChannelAvg)
	}
	if m.FieldCleared(report.FieldViewTopicAvg) {
		fields = append(fields, report.FieldViewTopicAvg)
	}
	if m.FieldCleared(report.FieldLikeCount) {
		fields = append(fields, report.FieldLikeCount)
	}
	if m.FieldCleared(report.FieldLikeChannelAvg) {
		fields = append(fields, report.FieldLikeChannelAvg)
	}
	if m.FieldCleared(report.FieldLikeTopicAvg) {
		fields = append(fields, report.FieldLikeTopicAvg)
	}
	if m.FieldCleared(report.FieldCommentCount) {
		fields = append(fields, report.FieldCommentCount)
	}
	if m.FieldCleared(report.FieldCommentChannelAvg) {
		fields = append(fields, report.FieldCommentChannelAvg)
	}
	if m.FieldCleared(report.FieldCommentTopicAvg) {
		fields = append(fields, report.FieldCommentTopicAvg)
	}
	if m.FieldCleared(report.FieldConcept) {
		fields = append(fields, report.FieldConcept)
	}
	if m.FieldCleared(report.FieldSeo) {
		fields = append(fields, report.FieldSeo)
	}
	if m.FieldCleared(report.FieldRevisit) {
		fields = append(fields, report.FieldRevisit)
	}
	if m.FieldCleared(report.FieldSummary) {
		fields = append(fields, report.FieldSummary)
	}
	if m.FieldCleared(report.FieldPositiveComment) {
		fields = append(fields, report.FieldPositiveComment)
	}
	if m.FieldCleared(report.FieldNegativeComment) {
		fields = append(fields, report.FieldNegativeComment)
	}
	if m.FieldCleared(report.FieldNeutralComment) {
		fields = append(fields, report.FieldNeutralComment)
	}
	if m.FieldCleared(report.FieldAdviceComment) {
		fields = append(fields, report.FieldAdviceComment)
	}
	if m.FieldCleared(report.FieldLeaveAnalyze) {
		fields = append(fields, report.FieldLeaveAnalyze)
	}
	if m.FieldCleared(report.FieldOptimization) {
		fields = append(fields, report.FieldOptimization)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldTitle:
		m.ClearTitle()
		return nil
	case report.FieldView:
		m.ClearView()
		return nil
	case report.FieldViewChannelAvg:
		m.ClearViewChannelAvg()
		return nil
	case report.FieldViewTopicAvg:
		m.ClearViewTopicAvg()
		return nil
	case report.FieldLikeCount:
		m.ClearLikeCount()
		return nil
	case report.FieldLikeChannelAvg:
		m.ClearLikeChannelAvg()
		return nil
	case report.FieldLikeTopicAvg:
		m.ClearLikeTopicAvg()
		return nil
	case report.FieldCommentCount:
		m.ClearCommentCount()
		return nil
	case report.FieldCommentChannelAvg:
		m.ClearCommentChannelAvg()
		return nil
	case report.FieldCommentTopicAvg:
		m.ClearCommentTopicAvg()
		return nil
	case report.FieldConcept:
		m.ClearConcept()
		return nil
	case report.FieldSeo:
		m.ClearSeo()
		return nil
	case report.FieldRevisit:
		m.ClearRevisit()
		return nil
	case report.FieldSummary:
		m.ClearSummary()
		return nil
	case report.FieldPositiveComment:
		m.ClearPositiveComment()
		return nil
	case report.FieldNegativeComment:
		m.ClearNegativeComment()
		return nil
	case report.FieldNeutralComment:
		m.ClearNeutralComment()
		return nil
	case report.FieldAdviceComment:
		m.ClearAdviceComment()
		return nil
	case report.FieldLeaveAnalyze:
		m.ClearLeaveAnalyze()
		return nil
	case report.FieldOptimization:
		m.ClearOptimization()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldVideoID:
		m.ResetVideoID()
		return nil
	case report.FieldTitle:
		m.ResetTitle()
		return nil
	case report.FieldView:
		m.ResetView()
		return nil
	case report.FieldViewChannelAvg:
		m.ResetViewChannelAvg()
		return nil
	case report.FieldViewTopicAvg:
		m.ResetViewTopicAvg()
		return nil
	case report.FieldLikeCount:
		m.ResetLikeCount()
		return nil
	case report.FieldLikeChannelAvg:
		m.ResetLikeChannelAvg()
		return nil
	case report.FieldLikeTopicAvg:
		m.ResetLikeTopicAvg()
		return nil
	case report.FieldCommentCount:
		m.ResetCommentCount()
		return nil
	case report.FieldCommentChannelAvg:
		m.ResetCommentChannelAvg()
		return nil
	case report.FieldCommentTopicAvg:
		m.ResetCommentTopicAvg()
		return nil
	case report.FieldConcept:
		m.ResetConcept()
		return nil
	case report.FieldSeo:
		m.ResetSeo()
		return nil
	case report.FieldRevisit:
		m.ResetRevisit()
		return nil
	case report.FieldSummary:
		m.ResetSummary()
		return nil
	case report.FieldPositiveComment:
		m.ResetPositiveComment()
		return nil
	case report.FieldNegativeComment:
		m.ResetNegativeComment()
		return nil
	case report.FieldNeutralComment:
		m.ResetNeutralComment()
		return nil
	case report.FieldAdviceComment:
		m.ResetAdviceComment()
		return nil
	case report.FieldLeaveAnalyze:
		m.ResetLeaveAnalyze()
		return nil
	case report.FieldOptimization:
		m.ResetOptimization()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Report edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op              Op
	typ             string
	id              *int
	report_id       *int
	addreport_id    *int
	overview_status *task.OverviewStatus
	analysis_status *task.AnalysisStatus
	idea_status     *task.IdeaStatus
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Task, error)
	predicates      []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *TaskMutation) SetReportID(i int) {
	m.report_id = &i
	m.addreport_id = nil
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *TaskMutation) ReportID() (r int, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldReportID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// AddReportID adds i to the "report_id" field.
func (m *TaskMutation) AddReportID(i int) {
	if m.addreport_id != nil {
		*m.addreport_id += i
	} else {
		m.addreport_id = &i
	}
}

// AddedReportID returns the value that was added to the "report_id" field in this mutation.
func (m *TaskMutation) AddedReportID() (r int, exists bool) {
	v := m.addreport_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetReportID resets all changes to the "report_id" field.
func (m *TaskMutation) ResetReportID() {
	m.report_id = nil
	m.addreport_id = nil
}

// SetOverviewStatus sets the "overview_status" field.
func (m *TaskMutation) SetOverviewStatus(ts task.OverviewStatus) {
	m.overview_status = &ts
}

// OverviewStatus returns the value of the "overview_status" field in the mutation.
func (m *TaskMutation) OverviewStatus() (r task.OverviewStatus, exists bool) {
	v := m.overview_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOverviewStatus returns the old "overview_status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOverviewStatus(ctx context.Context) (v task.OverviewStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverviewStatus: %w", err)
	}
	return oldValue.OverviewStatus, nil
}

// ResetOverviewStatus resets all changes to the "overview_status" field.
func (m *TaskMutation) ResetOverviewStatus() {
	m.overview_status = nil
}

// SetAnalysisStatus sets the "analysis_status" field.
func (m *TaskMutation) SetAnalysisStatus(ts task.AnalysisStatus) {
	m.analysis_status = &ts
}

// AnalysisStatus returns the value of the "analysis_status" field in the mutation.
func (m *TaskMutation) AnalysisStatus() (r task.AnalysisStatus, exists bool) {
	v := m.analysis_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisStatus returns the old "analysis_status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAnalysisStatus(ctx context.Context) (v task.AnalysisStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisStatus: %w", err)
	}
	return oldValue.AnalysisStatus, nil
}

// ResetAnalysisStatus resets all changes to the "analysis_status" field.
func (m *TaskMutation) ResetAnalysisStatus() {
	m.analysis_status = nil
}

// SetIdeaStatus sets the "idea_status" field.
func (m *TaskMutation) SetIdeaStatus(ts task.IdeaStatus) {
	m.idea_status = &ts
}

// IdeaStatus returns the value of the "idea_status" field in the mutation.
func (m *TaskMutation) IdeaStatus() (r task.IdeaStatus, exists bool) {
	v := m.idea_status
	if v == nil {
		return
	}
	return *v, true
}

// OldIdeaStatus returns the old "idea_status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIdeaStatus(ctx context.Context) (v task.IdeaStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdeaStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdeaStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdeaStatus: %w", err)
	}
	return oldValue.IdeaStatus, nil
}

// ResetIdeaStatus resets all changes to the "idea_status" field.
func (m *TaskMutation) ResetIdeaStatus() {
	m.idea_status = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.report_id != nil {
		fields = append(fields, task.FieldReportID)
	}
	if m.overview_status != nil {
		fields = append(fields, task.FieldOverviewStatus)
	}
	if m.analysis_status != nil {
		fields = append(fields, task.FieldAnalysisStatus)
	}
	if m.idea_status != nil {
		fields = append(fields, task.FieldIdeaStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldReportID:
		return m.ReportID()
	case task.FieldOverviewStatus:
		return m.OverviewStatus()
	case task.FieldAnalysisStatus:
		return m.AnalysisStatus()
	case task.FieldIdeaStatus:
		return m.IdeaStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldReportID:
		return m.OldReportID(ctx)
	case task.FieldOverviewStatus:
		return m.OldOverviewStatus(ctx)
	case task.FieldAnalysisStatus:
		return m.OldAnalysisStatus(ctx)
	case task.FieldIdeaStatus:
		return m.OldIdeaStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldReportID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case task.FieldOverviewStatus:
		v, ok := value.(task.OverviewStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverviewStatus(v)
		return nil
	case task.FieldAnalysisStatus:
		v, ok := value.(task.AnalysisStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisStatus(v)
		return nil
	case task.FieldIdeaStatus:
		v, ok := value.(task.IdeaStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdeaStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addreport_id != nil {
		fields = append(fields, task.FieldReportID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldReportID:
		return m.AddedReportID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldReportID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReportID(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldReportID:
		m.ResetReportID()
		return nil
	case task.FieldOverviewStatus:
		m.ResetOverviewStatus()
		return nil
	case task.FieldAnalysisStatus:
		m.ResetAnalysisStatus()
		return nil
	case task.FieldIdeaStatus:
		m.ResetIdeaStatus()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TrendKeywordMutation represents an operation that mutates the TrendKeyword nodes in the graph.
type TrendKeywordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	report_id     *int
	addreport_id  *int
	keyword_type  *trendkeyword.KeywordType
	keyword       *string
	score         *int
	addscore      *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TrendKeyword, error)
	predicates    []predicate.TrendKeyword
}

var _ ent.Mutation = (*TrendKeywordMutation)(nil)

// trendkeywordOption allows management of the mutation configuration using functional options.
type trendkeywordOption func(*TrendKeywordMutation)

// newTrendKeywordMutation creates new mutation for the TrendKeyword entity.
func newTrendKeywordMutation(c config, op Op, opts ...trendkeywordOption) *TrendKeywordMutation {
	m := &TrendKeywordMutation{
		config:        c,
		op:            op,
		typ:           TypeTrendKeyword,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrendKeywordID sets the ID field of the mutation.
func withTrendKeywordID(id int) trendkeywordOption {
	return func(m *TrendKeywordMutation) {
		var (
			err   error
			once  sync.Once
			value *TrendKeyword
		)
		m.oldValue = func(ctx context.Context) (*TrendKeyword, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrendKeyword.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrendKeyword sets the old TrendKeyword of the mutation.
func withTrendKeyword(node *TrendKeyword) trendkeywordOption {
	return func(m *TrendKeywordMutation) {
		m.oldValue = func(context.Context) (*TrendKeyword, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrendKeywordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrendKeywordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrendKeywordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrendKeywordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrendKeyword.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *TrendKeywordMutation) SetReportID(i int) {
	m.report_id = &i
	m.addreport_id = nil
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *TrendKeywordMutation) ReportID() (r int, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the TrendKeyword entity.
// If the TrendKeyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendKeywordMutation) OldReportID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// AddReportID adds i to the "report_id" field.
func (m *TrendKeywordMutation) AddReportID(i int) {
	if m.addreport_id != nil {
		*m.addreport_id += i
	} else {
		m.addreport_id = &i
	}
}

// AddedReportID returns the value that was added to the "report_id" field in this mutation.
func (m *TrendKeywordMutation) AddedReportID() (r int, exists bool) {
	v := m.addreport_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetReportID resets all changes to the "report_id" field.
func (m *TrendKeywordMutation) ResetReportID() {
	m.report_id = nil
	m.addreport_id = nil
}

// SetKeywordType sets the "keyword_type" field.
func (m *TrendKeywordMutation) SetKeywordType(tt trendkeyword.KeywordType) {
	m.keyword_type = &tt
}

// KeywordType returns the value of the "keyword_type" field in the mutation.
func (m *TrendKeywordMutation) KeywordType() (r trendkeyword.KeywordType, exists bool) {
	v := m.keyword_type
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywordType returns the old "keyword_type" field's value of the TrendKeyword entity.
// If the TrendKeyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendKeywordMutation) OldKeywordType(ctx context.Context) (v trendkeyword.KeywordType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywordType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywordType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywordType: %w", err)
	}
	return oldValue.KeywordType, nil
}

// ResetKeywordType resets all changes to the "keyword_type" field.
func (m *TrendKeywordMutation) ResetKeywordType() {
	m.keyword_type = nil
}

// SetKeyword sets the "keyword" field.
func (m *TrendKeywordMutation) SetKeyword(s string) {
	m.keyword = &s
}

// Keyword returns the value of the "keyword" field in the mutation.
func (m *TrendKeywordMutation) Keyword() (r string, exists bool) {
	v := m.keyword
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyword returns the old "keyword" field's value of the TrendKeyword entity.
// If the TrendKeyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendKeywordMutation) OldKeyword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyword: %w", err)
	}
	return oldValue.Keyword, nil
}

// ResetKeyword resets all changes to the "keyword" field.
func (m *TrendKeywordMutation) ResetKeyword() {
	m.keyword = nil
}

// SetScore sets the "score" field.
func (m *TrendKeywordMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TrendKeywordMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the TrendKeyword entity.
// If the TrendKeyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendKeywordMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *TrendKeywordMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TrendKeywordMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TrendKeywordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrendKeywordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrendKeywordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrendKeyword entity.
// If the TrendKeyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendKeywordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrendKeywordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TrendKeywordMutation builder.
func (m *TrendKeywordMutation) Where(ps ...predicate.TrendKeyword) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrendKeywordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrendKeywordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrendKeyword, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrendKeywordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrendKeywordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrendKeyword).
func (m *TrendKeywordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrendKeywordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.report_id != nil {
		fields = append(fields, trendkeyword.FieldReportID)
	}
	if m.keyword_type != nil {
		fields = append(fields, trendkeyword.FieldKeywordType)
	}
	if m.keyword != nil {
		fields = append(fields, trendkeyword.FieldKeyword)
	}
	if m.score != nil {
		fields = append(fields, trendkeyword.FieldScore)
	}
	if m.created_at != nil {
		fields = append(fields, trendkeyword.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrendKeywordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trendkeyword.FieldReportID:
		return m.ReportID()
	case trendkeyword.FieldKeywordType:
		return m.KeywordType()
	case trendkeyword.FieldKeyword:
		return m.Keyword()
	case trendkeyword.FieldScore:
		return m.Score()
	case trendkeyword.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrendKeywordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trendkeyword.FieldReportID:
		return m.OldReportID(ctx)
	case trendkeyword.FieldKeywordType:
		return m.OldKeywordType(ctx)
	case trendkeyword.FieldKeyword:
		return m.OldKeyword(ctx)
	case trendkeyword.FieldScore:
		return m.OldScore(ctx)
	case trendkeyword.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrendKeyword field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrendKeywordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trendkeyword.FieldReportID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case trendkeyword.FieldKeywordType:
		v, ok := value.(trendkeyword.KeywordType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywordType(v)
		return nil
	case trendkeyword.FieldKeyword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyword(v)
		return nil
	case trendkeyword.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case trendkeyword.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrendKeyword field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrendKeywordMutation) AddedFields() []string {
	var fields []string
	if m.addreport_id != nil {
		fields = append(fields, trendkeyword.FieldReportID)
	}
	if m.addscore != nil {
		fields = append(fields, trendkeyword.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrendKeywordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trendkeyword.FieldReportID:
		return m.AddedReportID()
	case trendkeyword.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrendKeywordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trendkeyword.FieldReportID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReportID(v)
		return nil
	case trendkeyword.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown TrendKeyword numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrendKeywordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrendKeywordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrendKeywordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrendKeyword nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrendKeywordMutation) ResetField(name string) error {
	switch name {
	case trendkeyword.FieldReportID:
		m.ResetReportID()
		return nil
	case trendkeyword.FieldKeywordType:
		m.ResetKeywordType()
		return nil
	case trendkeyword.FieldKeyword:
		m.ResetKeyword()
		return nil
	case trendkeyword.FieldScore:
		m.ResetScore()
		return nil
	case trendkeyword.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrendKeyword field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrendKeywordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrendKeywordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrendKeywordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrendKeywordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrendKeywordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrendKeywordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrendKeywordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrendKeyword unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrendKeywordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrendKeyword edge %s", name)
}

// VideoMutation represents an operation that mutates the Video nodes in the graph.
type VideoMutation struct {
	config
	op               Op
	typ              string
	id               *int
	channel_id       *int
	addchannel_id    *int
	youtube_video_id *string
	video_category   *string
	title            *string
	description      *string
	view             *int64
	addview          *int64
	like_count       *int64
	addlike_count    *int64
	comment_count    *int64
	addcomment_count *int64
	link             *string
	upload_date      *time.Time
	thumbnail        *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Video, error)
	predicates       []predicate.Video
}

var _ ent.Mutation = (*VideoMutation)(nil)

// videoOption allows management of the mutation configuration using functional options.
type videoOption func(*VideoMutation)

// newVideoMutation creates new mutation for the Video entity.
func newVideoMutation(c config, op Op, opts ...videoOption) *VideoMutation {
	m := &VideoMutation{
		config:        c,
		op:            op,
		typ:           TypeVideo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVideoID sets the ID field of the mutation.
func withVideoID(id int) videoOption {
	return func(m *VideoMutation) {
		var (
			err   error
			once  sync.Once
			value *Video
		)
		m.oldValue = func(ctx context.Context) (*Video, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Video.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVideo sets the old Video of the mutation.
func withVideo(node *Video) videoOption {
	return func(m *VideoMutation) {
		m.oldValue = func(context.Context) (*Video, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VideoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VideoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VideoMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VideoMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Video.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannelID sets the "channel_id" field.
func (m *VideoMutation) SetChannelID(i int) {
	m.channel_id = &i
	m.addchannel_id = nil
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *VideoMutation) ChannelID() (r int, exists bool) {
	v := m.channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldChannelID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// AddChannelID adds i to the "channel_id" field.
func (m *VideoMutation) AddChannelID(i int) {
	if m.addchannel_id != nil {
		*m.addchannel_id += i
	} else {
		m.addchannel_id = &i
	}
}

// AddedChannelID returns the value that was added to the "channel_id" field in this mutation.
func (m *VideoMutation) AddedChannelID() (r int, exists bool) {
	v := m.addchannel_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *VideoMutation) ResetChannelID() {
	m.channel_id = nil
	m.addchannel_id = nil
}

// SetYoutubeVideoID sets the "youtube_video_id" field.
func (m *VideoMutation) SetYoutubeVideoID(s string) {
	m.youtube_video_id = &s
}

// YoutubeVideoID returns the value of the "youtube_video_id" field in the mutation.
func (m *VideoMutation) YoutubeVideoID() (r string, exists bool) {
	v := m.youtube_video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldYoutubeVideoID returns the old "youtube_video_id" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldYoutubeVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYoutubeVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYoutubeVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYoutubeVideoID: %w", err)
	}
	return oldValue.YoutubeVideoID, nil
}

// ResetYoutubeVideoID resets all changes to the "youtube_video_id" field.
func (m *VideoMutation) ResetYoutubeVideoID() {
	m.youtube_video_id = nil
}

// SetVideoCategory sets the "video_category" field.
func (m *VideoMutation) SetVideoCategory(s string) {
	m.video_category = &s
}

// VideoCategory returns the value of the "video_category" field in the mutation.
func (m *VideoMutation) VideoCategory() (r string, exists bool) {
	v := m.video_category
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoCategory returns the old "video_category" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldVideoCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoCategory: %w", err)
	}
	return oldValue.VideoCategory, nil
}

// ResetVideoCategory resets all changes to the "video_category" field.
func (m *VideoMutation) ResetVideoCategory() {
	m.video_category = nil
}

// SetTitle sets the "title" field.
func (m *VideoMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *VideoMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *VideoMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[video.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *VideoMutation) TitleCleared() bool {
	_, ok := m.clearedFields[video.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *VideoMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, video.FieldTitle)
}

// SetDescription sets the "description" field.
func (m *VideoMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *VideoMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *VideoMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[video.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *VideoMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[video.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *VideoMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, video.FieldDescription)
}

// SetView sets the "view" field.
func (m *VideoMutation) SetView(i int64) {
	m.view = &i
	m.addview = nil
}

// View returns the value of the "view" field in the mutation.
func (m *VideoMutation) View() (r int64, exists bool) {
	v := m.view
	if v == nil {
		return
	}
	return *v, true
}

// OldView returns the old "view" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldView(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldView is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldView requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldView: %w", err)
	}
	return oldValue.View, nil
}

// AddView adds i to the "view" field.
func (m *VideoMutation) AddView(i int64) {
	if m.addview != nil {
		*m.addview += i
	} else {
		m.addview = &i
	}
}

// AddedView returns the value that was added to the "view" field in this mutation.
func (m *VideoMutation) AddedView() (r int64, exists bool) {
	v := m.addview
	if v == nil {
		return
	}
	return *v, true
}

// ClearView clears the value of the "view" field.
func (m *VideoMutation) ClearView() {
	m.view = nil
	m.addview = nil
	m.clearedFields[video.FieldView] = struct{}{}
}

// ViewCleared returns if the "view" field was cleared in this mutation.
func (m *VideoMutation) ViewCleared() bool {
	_, ok := m.clearedFields[video.FieldView]
	return ok
}

// ResetView resets all changes to the "view" field.
func (m *VideoMutation) ResetView() {
	m.view = nil
	m.addview = nil
	delete(m.clearedFields, video.FieldView)
}

// SetLikeCount sets the "like_count" field.
func (m *VideoMutation) SetLikeCount(i int64) {
	m.like_count = &i
	m.addlike_count = nil
}

// LikeCount returns the value of the "like_count" field in the mutation.
func (m *VideoMutation) LikeCount() (r int64, exists bool) {
	v := m.like_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLikeCount returns the old "like_count" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldLikeCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikeCount: %w", err)
	}
	return oldValue.LikeCount, nil
}

// AddLikeCount adds i to the "like_count" field.
func (m *VideoMutation) AddLikeCount(i int64) {
	if m.addlike_count != nil {
		*m.addlike_count += i
	} else {
		m.addlike_count = &i
	}
}

// AddedLikeCount returns the value that was added to the "like_count" field in this mutation.
func (m *VideoMutation) AddedLikeCount() (r int64, exists bool) {
	v := m.addlike_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearLikeCount clears the value of the "like_count" field.
func (m *VideoMutation) ClearLikeCount() {
	m.like_count = nil
	m.addlike_count = nil
	m.clearedFields[video.FieldLikeCount] = struct{}{}
}

// LikeCountCleared returns if the "like_count" field was cleared in this mutation.
func (m *VideoMutation) LikeCountCleared() bool {
	_, ok := m.clearedFields[video.FieldLikeCount]
	return ok
}

// ResetLikeCount resets all changes to the "like_count" field.
func (m *VideoMutation) ResetLikeCount() {
	m.like_count = nil
	m.addlike_count = nil
	delete(m.clearedFields, video.FieldLikeCount)
}

// SetCommentCount sets the "comment_count" field.
func (m *VideoMutation) SetCommentCount(i int64) {
	m.comment_count = &i
	m.addcomment_count = nil
}

// CommentCount returns the value of the "comment_count" field in the mutation.
func (m *VideoMutation) CommentCount() (r int64, exists bool) {
	v := m.comment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentCount returns the old "comment_count" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldCommentCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentCount: %w", err)
	}
	return oldValue.CommentCount, nil
}

// AddCommentCount adds i to the "comment_count" field.
func (m *VideoMutation) AddCommentCount(i int64) {
	if m.addcomment_count != nil {
		*m.addcomment_count += i
	} else {
		m.addcomment_count = &i
	}
}

// AddedCommentCount returns the value that was added to the "comment_count" field in this mutation.
func (m *VideoMutation) AddedCommentCount() (r int64, exists bool) {
	v := m.addcomment_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommentCount clears the value of the "comment_count" field.
func (m *VideoMutation) ClearCommentCount() {
	m.comment_count = nil
	m.addcomment_count = nil
	m.clearedFields[video.FieldCommentCount] = struct{}{}
}

// CommentCountCleared returns if the "comment_count" field was cleared in this mutation.
func (m *VideoMutation) CommentCountCleared() bool {
	_, ok := m.clearedFields[video.FieldCommentCount]
	return ok
}

// ResetCommentCount resets all changes to the "comment_count" field.
func (m *VideoMutation) ResetCommentCount() {
	m.comment_count = nil
	m.addcomment_count = nil
	delete(m.clearedFields, video.FieldCommentCount)
}

// SetLink sets the "link" field.
func (m *VideoMutation) SetLink(s string) {
	m.link = &s
}

// Link returns the value of the "link" field in the mutation.
func (m *VideoMutation) Link() (r string, exists bool) {
	v := m.link
	if v == nil {
		return
	}
	return *v, true
}

// OldLink returns the old "link" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldLink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLink: %w", err)
	}
	return oldValue.Link, nil
}

// ClearLink clears the value of the "link" field.
func (m *VideoMutation) ClearLink() {
	m.link = nil
	m.clearedFields[video.FieldLink] = struct{}{}
}

// LinkCleared returns if the "link" field was cleared in this mutation.
func (m *VideoMutation) LinkCleared() bool {
	_, ok := m.clearedFields[video.FieldLink]
	return ok
}

// ResetLink resets all changes to the "link" field.
func (m *VideoMutation) ResetLink() {
	m.link = nil
	delete(m.clearedFields, video.FieldLink)
}

// SetUploadDate sets the "upload_date" field.
func (m *VideoMutation) SetUploadDate(t time.Time) {
	m.upload_date = &t
}

// UploadDate returns the value of the "upload_date" field in the mutation.
func (m *VideoMutation) UploadDate() (r time.Time, exists bool) {
	v := m.upload_date
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadDate returns the old "upload_date" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldUploadDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadDate: %w", err)
	}
	return oldValue.UploadDate, nil
}

// ClearUploadDate clears the value of the "upload_date" field.
func (m *VideoMutation) ClearUploadDate() {
	m.upload_date = nil
	m.clearedFields[video.FieldUploadDate] = struct{}{}
}

// UploadDateCleared returns if the "upload_date" field was cleared in this mutation.
func (m *VideoMutation) UploadDateCleared() bool {
	_, ok := m.clearedFields[video.FieldUploadDate]
	return ok
}

// ResetUploadDate resets all changes to the "upload_date" field.
func (m *VideoMutation) ResetUploadDate() {
	m.upload_date = nil
	delete(m.clearedFields, video.FieldUploadDate)
}

// SetThumbnail sets the "thumbnail" field.
func (m *VideoMutation) SetThumbnail(s string) {
	m.thumbnail = &s
}

// Thumbnail returns the value of the "thumbnail" field in the mutation.
func (m *VideoMutation) Thumbnail() (r string, exists bool) {
	v := m.thumbnail
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnail returns the old "thumbnail" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldThumbnail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnail: %w", err)
	}
	return oldValue.Thumbnail, nil
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (m *VideoMutation) ClearThumbnail() {
	m.thumbnail = nil
	m.clearedFields[video.FieldThumbnail] = struct{}{}
}

// ThumbnailCleared returns if the "thumbnail" field was cleared in this mutation.
func (m *VideoMutation) ThumbnailCleared() bool {
	_, ok := m.clearedFields[video.FieldThumbnail]
	return ok
}

// ResetThumbnail resets all changes to the "thumbnail" field.
func (m *VideoMutation) ResetThumbnail() {
	m.thumbnail = nil
	delete(m.clearedFields, video.FieldThumbnail)
}

// SetCreatedAt sets the "created_at" field.
func (m *VideoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VideoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VideoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VideoMutation builder.
func (m *VideoMutation) Where(ps ...predicate.Video) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VideoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VideoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Video, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VideoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VideoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Video).
func (m *VideoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VideoMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.channel_id != nil {
		fields = append(fields, video.FieldChannelID)
	}
	if m.youtube_video_id != nil {
		fields = append(fields, video.FieldYoutubeVideoID)
	}
	if m.video_category != nil {
		fields = append(fields, video.FieldVideoCategory)
	}
	if m.title != nil {
		fields = append(fields, video.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, video.FieldDescription)
	}
	if m.view != nil {
		fields = append(fields, video.FieldView)
	}
	if m.like_count != nil {
		fields = append(fields, video.FieldLikeCount)
	}
	if m.comment_count != nil {
		fields = append(fields, video.FieldCommentCount)
	}
	if m.link != nil {
		fields = append(fields, video.FieldLink)
	}
	if m.upload_date != nil {
		fields = append(fields, video.FieldUploadDate)
	}
	if m.thumbnail != nil {
		fields = append(fields, video.FieldThumbnail)
	}
	if m.created_at != nil {
		fields = append(fields, video.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VideoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case video.FieldChannelID:
		return m.ChannelID()
	case video.FieldYoutubeVideoID:
		return m.YoutubeVideoID()
	case video.FieldVideoCategory:
		return m.VideoCategory()
	case video.FieldTitle:
		return m.Title()
	case video.FieldDescription:
		return m.Description()
	case video.FieldView:
		return m.View()
	case video.FieldLikeCount:
		return m.LikeCount()
	case video.FieldCommentCount:
		return m.CommentCount()
	case video.FieldLink:
		return m.Link()
	case video.FieldUploadDate:
		return m.UploadDate()
	case video.FieldThumbnail:
		return m.Thumbnail()
	case video.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VideoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case video.FieldChannelID:
		return m.OldChannelID(ctx)
	case video.FieldYoutubeVideoID:
		return m.OldYoutubeVideoID(ctx)
	case video.FieldVideoCategory:
		return m.OldVideoCategory(ctx)
	case video.FieldTitle:
		return m.OldTitle(ctx)
	case video.FieldDescription:
		return m.OldDescription(ctx)
	case video.FieldView:
		return m.OldView(ctx)
	case video.FieldLikeCount:
		return m.OldLikeCount(ctx)
	case video.FieldCommentCount:
		return m.OldCommentCount(ctx)
	case video.FieldLink:
		return m.OldLink(ctx)
	case video.FieldUploadDate:
		return m.OldUploadDate(ctx)
	case video.FieldThumbnail:
		return m.OldThumbnail(ctx)
	case video.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Video field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VideoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case video.FieldChannelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case video.FieldYoutubeVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYoutubeVideoID(v)
		return nil
	case video.FieldVideoCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoCategory(v)
		return nil
	case video.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case video.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case video.FieldView:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetView(v)
		return nil
	case video.FieldLikeCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikeCount(v)
		return nil
	case video.FieldCommentCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentCount(v)
		return nil
	case video.FieldLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLink(v)
		return nil
	case video.FieldUploadDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadDate(v)
		return nil
	case video.FieldThumbnail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnail(v)
		return nil
	case video.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Video field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VideoMutation) AddedFields() []string {
	var fields []string
	if m.addchannel_id != nil {
		fields = append(fields, video.FieldChannelID)
	}
	if m.addview != nil {
		fields = append(fields, video.FieldView)
	}
	if m.addlike_count != nil {
		fields = append(fields, video.FieldLikeCount)
	}
	if m.addcomment_count != nil {
		fields = append(fields, video.FieldCommentCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VideoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case video.FieldChannelID:
		return m.AddedChannelID()
	case video.FieldView:
		return m.AddedView()
	case video.FieldLikeCount:
		return m.AddedLikeCount()
	case video.FieldCommentCount:
		return m.AddedCommentCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VideoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case video.FieldChannelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChannelID(v)
		return nil
	case video.FieldView:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddView(v)
		return nil
	case video.FieldLikeCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikeCount(v)
		return nil
	case video.FieldCommentCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentCount(v)
		return nil
	}
	return fmt.Errorf("unknown Video numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VideoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(video.FieldTitle) {
		fields = append(fields, video.FieldTitle)
	}
	if m.FieldCleared(video.FieldDescription) {
		fields = append(fields, video.FieldDescription)
	}
	if m.FieldCleared(video.FieldView) {
		fields = append(fields, video.FieldView)
	}
	if m.FieldCleared(video.FieldLikeCount) {
		fields = append(fields, video.FieldLikeCount)
	}
	if m.FieldCleared(video.FieldCommentCount) {
		fields = append(fields, video.FieldCommentCount)
	}
	if m.FieldCleared(video.FieldLink) {
		fields = append(fields, video.FieldLink)
	}
	if m.FieldCleared(video.FieldUploadDate) {
		fields = append(fields, video.FieldUploadDate)
	}
	if m.FieldCleared(video.FieldThumbnail) {
		fields = append(fields, video.FieldThumbnail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VideoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VideoMutation) ClearField(name string) error {
	switch name {
	case video.FieldTitle:
		m.ClearTitle()
		return nil
	case video.FieldDescription:
		m.ClearDescription()
		return nil
	case video.FieldView:
		m.ClearView()
		return nil
	case video.FieldLikeCount:
		m.ClearLikeCount()
		return nil
	case video.FieldCommentCount:
		m.ClearCommentCount()
		return nil
	case video.FieldLink:
		m.ClearLink()
		return nil
	case video.FieldUploadDate:
		m.ClearUploadDate()
		return nil
	case video.FieldThumbnail:
		m.ClearThumbnail()
		return nil
	}
	return fmt.Errorf("unknown Video nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VideoMutation) ResetField(name string) error {
	switch name {
	case video.FieldChannelID:
		m.ResetChannelID()
		return nil
	case video.FieldYoutubeVideoID:
		m.ResetYoutubeVideoID()
		return nil
	case video.FieldVideoCategory:
		m.ResetVideoCategory()
		return nil
	case video.FieldTitle:
		m.ResetTitle()
		return nil
	case video.FieldDescription:
		m.ResetDescription()
		return nil
	case video.FieldView:
		m.ResetView()
		return nil
	case video.FieldLikeCount:
		m.ResetLikeCount()
		return nil
	case video.FieldCommentCount:
		m.ResetCommentCount()
		return nil
	case video.FieldLink:
		m.ResetLink()
		return nil
	case video.FieldUploadDate:
		m.ResetUploadDate()
		return nil
	case video.FieldThumbnail:
		m.ResetThumbnail()
		return nil
	case video.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Video field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VideoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VideoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VideoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VideoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VideoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VideoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VideoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Video unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VideoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Video edge %s", name)
}
