package chat

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/dbtest"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

func TestGetOrCreateRoomIsIdempotent(t *testing.T) {
	gdb := dbtest.New(t)
	repo := repository.NewChatGormRepository(gdb)
	user := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleUser))
	m := dbtest.Merchant(t, gdb, dbtest.User(t, gdb, models.RoleMerchant))
	uc := NewGetOrCreateRoom(repo)

	first, err := uc.Execute(context.Background(), user, m.ID)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), user, m.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, first.MerchantID)
	assert.Equal(t, m.ID, *first.MerchantID)
	assert.False(t, first.IsSupport)
}

func TestGetOrCreateRoomConcurrentFirstContact(t *testing.T) {
	gdb := dbtest.New(t)
	repo := repository.NewChatGormRepository(gdb)
	user := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleUser))
	m := dbtest.Merchant(t, gdb, dbtest.User(t, gdb, models.RoleMerchant))
	uc := NewGetOrCreateRoom(repo)

	const workers = 8
	ids := make([]uint, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room, err := uc.Execute(context.Background(), user, m.ID)
			errs[i] = err
			if err == nil {
				ids[i] = room.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	var count int64
	require.NoError(t, gdb.Model(&models.ChatRoom{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateRoomUnknownMerchant(t *testing.T) {
	gdb := dbtest.New(t)
	user := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleUser))

	_, err := NewGetOrCreateRoom(repository.NewChatGormRepository(gdb)).Execute(context.Background(), user, 4242)
	kind, ok := httperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindNotFound, kind)
}

func TestSupportRoomSeparateFromMerchantRoom(t *testing.T) {
	gdb := dbtest.New(t)
	repo := repository.NewChatGormRepository(gdb)
	user := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleUser))
	m := dbtest.Merchant(t, gdb, dbtest.User(t, gdb, models.RoleMerchant))

	merchantRoom, err := NewGetOrCreateRoom(repo).Execute(context.Background(), user, m.ID)
	require.NoError(t, err)

	support, err := NewGetOrCreateSupportRoom(repo).Execute(context.Background(), user)
	require.NoError(t, err)
	again, err := NewGetOrCreateSupportRoom(repo).Execute(context.Background(), user)
	require.NoError(t, err)

	assert.True(t, support.IsSupport)
	assert.Nil(t, support.MerchantID)
	assert.Equal(t, support.ID, again.ID)
	assert.NotEqual(t, merchantRoom.ID, support.ID)
}

func TestMessagesRequireParticipant(t *testing.T) {
	gdb := dbtest.New(t)
	repo := repository.NewChatGormRepository(gdb)
	ctx := context.Background()

	user := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleUser))
	ownerModel := dbtest.User(t, gdb, models.RoleMerchant)
	owner := auth.IdentityFromUser(ownerModel)
	m := dbtest.Merchant(t, gdb, ownerModel)
	outsider := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleUser))
	otherMerchant := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleMerchant))
	admin := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleAdmin))

	room, err := NewGetOrCreateRoom(repo).Execute(ctx, user, m.ID)
	require.NoError(t, err)

	post := NewPostMessage(repo)
	list := NewListMessages(repo)

	_, err = post.Execute(ctx, user, room.ID, "  hello  ")
	require.NoError(t, err)
	_, err = post.Execute(ctx, owner, room.ID, "hi, how can I help?")
	require.NoError(t, err)

	for _, who := range []auth.Identity{outsider, otherMerchant} {
		_, err = list.Execute(ctx, who, room.ID)
		assert.Equal(t, httperr.KindForbidden, mustKind(t, err))

		_, err = post.Execute(ctx, who, room.ID, "let me in")
		assert.Equal(t, httperr.KindForbidden, mustKind(t, err))
	}

	msgs, err := list.Execute(ctx, admin, room.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Text)
	assert.Equal(t, user.UserID, msgs[0].SenderUserID)
	assert.Equal(t, owner.UserID, msgs[1].SenderUserID)

	_, err = list.Execute(ctx, user, 9999)
	assert.Equal(t, httperr.KindNotFound, mustKind(t, err))
}

func TestPostMessageValidatesText(t *testing.T) {
	gdb := dbtest.New(t)
	repo := repository.NewChatGormRepository(gdb)
	user := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleUser))

	room, err := NewGetOrCreateSupportRoom(repo).Execute(context.Background(), user)
	require.NoError(t, err)

	post := NewPostMessage(repo)

	_, err = post.Execute(context.Background(), user, room.ID, "   ")
	assert.True(t, httperr.IsBusiness(err, "empty_text"))

	_, err = post.Execute(context.Background(), user, room.ID, strings.Repeat("a", 4001))
	assert.True(t, httperr.IsBusiness(err, "text_too_long"))

	_, err = post.Execute(context.Background(), user, room.ID, strings.Repeat("a", 4000))
	assert.NoError(t, err)
}

func TestSupportRoomClosedToMerchants(t *testing.T) {
	gdb := dbtest.New(t)
	repo := repository.NewChatGormRepository(gdb)
	user := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleUser))
	merchant := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleMerchant))

	room, err := NewGetOrCreateSupportRoom(repo).Execute(context.Background(), user)
	require.NoError(t, err)

	_, err = NewListMessages(repo).Execute(context.Background(), merchant, room.ID)
	assert.Equal(t, httperr.KindForbidden, mustKind(t, err))
}

func TestListRoomsByRole(t *testing.T) {
	gdb := dbtest.New(t)
	repo := repository.NewChatGormRepository(gdb)
	ctx := context.Background()

	userModel := dbtest.User(t, gdb, models.RoleUser)
	user := auth.IdentityFromUser(userModel)
	ownerModel := dbtest.User(t, gdb, models.RoleMerchant)
	m := dbtest.Merchant(t, gdb, ownerModel)
	admin := auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleAdmin))

	_, err := NewGetOrCreateRoom(repo).Execute(ctx, user, m.ID)
	require.NoError(t, err)
	_, err = NewGetOrCreateSupportRoom(repo).Execute(ctx, user)
	require.NoError(t, err)

	lister := NewListRooms(repo)

	mine, err := lister.Execute(ctx, user)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.NotNil(t, mine[0].MerchantName)
	assert.Equal(t, m.Name, *mine[0].MerchantName)
	assert.Nil(t, mine[1].MerchantName)

	owned, err := lister.Execute(ctx, auth.IdentityFromUser(ownerModel))
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, userModel.Name, owned[0].UserName)
	assert.False(t, owned[0].IsSupport)

	all, err := lister.Execute(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := lister.Execute(ctx, auth.IdentityFromUser(dbtest.User(t, gdb, models.RoleMerchant)))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func mustKind(t *testing.T, err error) httperr.Kind {
	t.Helper()
	require.Error(t, err)
	kind, ok := httperr.KindOf(err)
	require.True(t, ok, "not a business error: %v", err)
	return kind
}
