// Code generated by ent, DO NOT EDIT.

package chunk

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDocumentID, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkIndex, v))
}

// StartOffset applies equality check predicate on the "start_offset" field. It's identical to StartOffsetEQ.
func StartOffset(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldStartOffset, v))
}

// EndOffset applies equality check predicate on the "end_offset" field. It's identical to EndOffsetEQ.
func EndOffset(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldEndOffset, v))
}

// Locator applies equality check predicate on the "locator" field. It's identical to LocatorEQ.
func Locator(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldLocator, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldText, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldDocumentID, v))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldChunkIndex, v))
}

// StartOffsetEQ applies the EQ predicate on the "start_offset" field.
func StartOffsetEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldStartOffset, v))
}

// StartOffsetNEQ applies the NEQ predicate on the "start_offset" field.
func StartOffsetNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldStartOffset, v))
}

// StartOffsetIn applies the In predicate on the "start_offset" field.
func StartOffsetIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldStartOffset, vs...))
}

// StartOffsetNotIn applies the NotIn predicate on the "start_offset" field.
func StartOffsetNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldStartOffset, vs...))
}

// StartOffsetGT applies the GT predicate on the "start_offset" field.
func StartOffsetGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldStartOffset, v))
}

// StartOffsetGTE applies the GTE predicate on the "start_offset" field.
func StartOffsetGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldStartOffset, v))
}

// StartOffsetLT applies the LT predicate on the "start_offset" field.
func StartOffsetLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldStartOffset, v))
}

// StartOffsetLTE applies the LTE predicate on the "start_offset" field.
func StartOffsetLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldStartOffset, v))
}

// EndOffsetEQ applies the EQ predicate on the "end_offset" field.
func EndOffsetEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldEndOffset, v))
}

// EndOffsetNEQ applies the NEQ predicate on the "end_offset" field.
func EndOffsetNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldEndOffset, v))
}

// EndOffsetIn applies the In predicate on the "end_offset" field.
func EndOffsetIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldEndOffset, vs...))
}

// EndOffsetNotIn applies the NotIn predicate on the "end_offset" field.
func EndOffsetNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldEndOffset, vs...))
}

// EndOffsetGT applies the GT predicate on the "end_offset" field.
func EndOffsetGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldEndOffset, v))
}

// EndOffsetGTE applies the GTE predicate on the "end_offset" field.
func EndOffsetGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldEndOffset, v))
}

// EndOffsetLT applies the LT predicate on the "end_offset" field.
func EndOffsetLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldEndOffset, v))
}

// EndOffsetLTE applies the LTE predicate on the "end_offset" field.
func EndOffsetLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldEndOffset, v))
}

// LocatorEQ applies the EQ predicate on the "locator" field.
func LocatorEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldLocator, v))
}

// LocatorNEQ applies the NEQ predicate on the "locator" field.
func LocatorNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldLocator, v))
}

// LocatorIn applies the In predicate on the "locator" field.
func LocatorIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldLocator, vs...))
}

// LocatorNotIn applies the NotIn predicate on the "locator" field.
func LocatorNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldLocator, vs...))
}

// LocatorGT applies the GT predicate on the "locator" field.
func LocatorGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldLocator, v))
}

// LocatorGTE applies the GTE predicate on the "locator" field.
func LocatorGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldLocator, v))
}

// LocatorLT applies the LT predicate on the "locator" field.
func LocatorLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldLocator, v))
}

// LocatorLTE applies the LTE predicate on the "locator" field.
func LocatorLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldLocator, v))
}

// LocatorContains applies the Contains predicate on the "locator" field.
func LocatorContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldLocator, v))
}

// LocatorHasPrefix applies the HasPrefix predicate on the "locator" field.
func LocatorHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldLocator, v))
}

// LocatorHasSuffix applies the HasSuffix predicate on the "locator" field.
func LocatorHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldLocator, v))
}

// LocatorEqualFold applies the EqualFold predicate on the "locator" field.
func LocatorEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldLocator, v))
}

// LocatorContainsFold applies the ContainsFold predicate on the "locator" field.
func LocatorContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldLocator, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.NotPredicates(p))
}
