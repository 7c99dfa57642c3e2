package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAttachment_States(t *testing.T) {
	pkgID := primitive.NewObjectID()

	draft := Unattached()
	assert.True(t, draft.IsDraft())
	_, ok := draft.PackageID()
	assert.False(t, ok)

	linked := AttachedTo(pkgID)
	assert.False(t, linked.IsDraft())
	id, ok := linked.PackageID()
	assert.True(t, ok)
	assert.Equal(t, pkgID, id)
	assert.True(t, linked.IsAttachedTo(pkgID))
	assert.False(t, linked.IsAttachedTo(primitive.NewObjectID()))

	assert.True(t, AttachedTo(primitive.NilObjectID).IsDraft())
}

func TestAttachment_BSONRoundTrip(t *testing.T) {
	pkgID := primitive.NewObjectID()

	tests := []struct {
		name       string
		attachment Attachment
	}{
		{"draft stored as null", Unattached()},
		{"linked stored as object id", AttachedTo(pkgID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := PackageItem{ID: primitive.NewObjectID(), Attachment: tt.attachment, Quantity: 1}
			raw, err := bson.Marshal(item)
			require.NoError(t, err)

			val := bson.Raw(raw).Lookup("package_id")
			if tt.attachment.IsDraft() {
				assert.Equal(t, bson.TypeNull, val.Type)
			} else {
				assert.Equal(t, pkgID, val.ObjectID())
			}

			var decoded PackageItem
			require.NoError(t, bson.Unmarshal(raw, &decoded))
			assert.Equal(t, tt.attachment, decoded.Attachment)
		})
	}
}

func TestAttachment_BSONMissingFieldIsDraft(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"_id": primitive.NewObjectID(), "quantity": 2})
	require.NoError(t, err)

	var decoded PackageItem
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Attachment.IsDraft())
}

func TestAttachment_JSON(t *testing.T) {
	pkgID := primitive.NewObjectID()

	data, err := json.Marshal(AttachedTo(pkgID))
	require.NoError(t, err)
	assert.Equal(t, `"`+pkgID.Hex()+`"`, string(data))

	data, err = json.Marshal(Unattached())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var a Attachment
	require.NoError(t, json.Unmarshal([]byte(`"`+pkgID.Hex()+`"`), &a))
	assert.True(t, a.IsAttachedTo(pkgID))

	require.NoError(t, json.Unmarshal([]byte(`""`), &a))
	assert.True(t, a.IsDraft())

	assert.Error(t, json.Unmarshal([]byte(`"not-an-id"`), &a))
}

func TestPackageItem_EffectiveValues(t *testing.T) {
	dish := &Dish{Price: decimal.RequireFromString("45.00")}
	snapshot := decimal.RequireFromString("40.00")

	tests := []struct {
		name          string
		item          PackageItem
		dish          *Dish
		expectedPrice string
		expectedQty   int
	}{
		{"snapshot wins", PackageItem{PriceAtTime: &snapshot, Quantity: 2}, dish, "40", 2},
		{"live dish price", PackageItem{Quantity: 1}, dish, "45", 1},
		{"zero quantity counts as one", PackageItem{Quantity: 0}, dish, "45", 1},
		{"negative quantity counts as one", PackageItem{Quantity: -3}, dish, "45", 1},
		{"missing dish without snapshot", PackageItem{Quantity: 1}, nil, "0", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.expectedPrice).Equal(tt.item.EffectiveUnitPrice(tt.dish)))
			assert.Equal(t, tt.expectedQty, tt.item.EffectiveQuantity())
		})
	}
}
