package delta

// Wire layout (msgpack):
//
//	Delta  = [ [Vertex…], [Vertex…], [Edge…], [Edge…] ]
//	Vertex = [ ts, value ]
//	Edge   = [ ts, a, b ]

import (
	"time"

	"github.com/tinylib/msgp/msgp"

	"github.com/katalvlaran/lwwgraph/element"
)

const (
	deltaFields  = 4
	vertexFields = 2
	edgeFields   = 3

	// Smallest encodings of one record: fixarray header, timestamp
	// extension, then one empty fixstr per string field.
	minVertexSize = 1 + msgp.TimeSize + 1
	minEdgeSize   = 1 + msgp.TimeSize + 2
)

var (
	_ msgp.Marshaler   = (*Delta)(nil)
	_ msgp.Unmarshaler = (*Delta)(nil)
	_ msgp.Sizer       = (*Delta)(nil)
)

// MarshalMsg implements msgp.Marshaler
func (z *Delta) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendArrayHeader(o, deltaFields)
	o = appendVertices(o, z.AddVertices)
	o = appendVertices(o, z.RemoveVertices)
	o = appendEdges(o, z.AddEdges)
	o = appendEdges(o, z.RemoveEdges)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Delta) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var sz uint32
	sz, bts, err = msgp.ReadArrayHeaderBytes(bts)
	if err != nil {
		return
	}
	if sz != deltaFields {
		err = msgp.ArrayError{Wanted: deltaFields, Got: sz}
		return
	}
	z.AddVertices, bts, err = readVertices(bts)
	if err != nil {
		return
	}
	z.RemoveVertices, bts, err = readVertices(bts)
	if err != nil {
		return
	}
	z.AddEdges, bts, err = readEdges(bts)
	if err != nil {
		return
	}
	z.RemoveEdges, bts, err = readEdges(bts)
	if err != nil {
		return
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Delta) Msgsize() (s int) {
	s = msgp.ArrayHeaderSize
	s += verticesSize(z.AddVertices) + verticesSize(z.RemoveVertices)
	s += edgesSize(z.AddEdges) + edgesSize(z.RemoveEdges)
	return
}

func appendVertices(o []byte, vs []element.Vertex) []byte {
	o = msgp.AppendArrayHeader(o, uint32(len(vs)))
	for _, v := range vs {
		o = msgp.AppendArrayHeader(o, vertexFields)
		o = msgp.AppendTime(o, v.Timestamp())
		o = msgp.AppendString(o, v.Value())
	}
	return o
}

func appendEdges(o []byte, es []element.Edge) []byte {
	o = msgp.AppendArrayHeader(o, uint32(len(es)))
	for _, e := range es {
		o = msgp.AppendArrayHeader(o, edgeFields)
		o = msgp.AppendTime(o, e.Timestamp())
		o = msgp.AppendString(o, e.A())
		o = msgp.AppendString(o, e.B())
	}
	return o
}

func readVertices(bts []byte) (vs []element.Vertex, o []byte, err error) {
	var n, fields uint32
	n, bts, err = msgp.ReadArrayHeaderBytes(bts)
	if err != nil {
		return
	}
	if uint64(n)*minVertexSize > uint64(len(bts)) {
		err = msgp.ErrShortBytes
		return
	}
	vs = make([]element.Vertex, 0, n)
	for i := uint32(0); i < n; i++ {
		fields, bts, err = msgp.ReadArrayHeaderBytes(bts)
		if err != nil {
			return
		}
		if fields != vertexFields {
			err = msgp.ArrayError{Wanted: vertexFields, Got: fields}
			return
		}
		var (
			ts    time.Time
			value string
		)
		ts, bts, err = msgp.ReadTimeBytes(bts)
		if err != nil {
			return
		}
		value, bts, err = msgp.ReadStringBytes(bts)
		if err != nil {
			return
		}
		vs = append(vs, element.NewVertex(ts.UTC(), value))
	}
	o = bts
	return
}

func readEdges(bts []byte) (es []element.Edge, o []byte, err error) {
	var n, fields uint32
	n, bts, err = msgp.ReadArrayHeaderBytes(bts)
	if err != nil {
		return
	}
	if uint64(n)*minEdgeSize > uint64(len(bts)) {
		err = msgp.ErrShortBytes
		return
	}
	es = make([]element.Edge, 0, n)
	for i := uint32(0); i < n; i++ {
		fields, bts, err = msgp.ReadArrayHeaderBytes(bts)
		if err != nil {
			return
		}
		if fields != edgeFields {
			err = msgp.ArrayError{Wanted: edgeFields, Got: fields}
			return
		}
		var (
			ts   time.Time
			a, b string
		)
		ts, bts, err = msgp.ReadTimeBytes(bts)
		if err != nil {
			return
		}
		a, bts, err = msgp.ReadStringBytes(bts)
		if err != nil {
			return
		}
		b, bts, err = msgp.ReadStringBytes(bts)
		if err != nil {
			return
		}
		es = append(es, element.NewEdge(ts.UTC(), a, b))
	}
	o = bts
	return
}

func verticesSize(vs []element.Vertex) (s int) {
	s = msgp.ArrayHeaderSize
	for _, v := range vs {
		s += msgp.ArrayHeaderSize + msgp.TimeSize + msgp.StringPrefixSize + len(v.Value())
	}
	return
}

func edgesSize(es []element.Edge) (s int) {
	s = msgp.ArrayHeaderSize
	for _, e := range es {
		s += msgp.ArrayHeaderSize + msgp.TimeSize + 2*msgp.StringPrefixSize + len(e.A()) + len(e.B())
	}
	return
}
