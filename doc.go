// Package hufftree implements a lossless byte compressor built on an
// explicit Huffman code tree.  The tree is stored in the compressed stream
// itself, in preorder, so that no frequency table needs to be transmitted.
//
// Stream layout, most significant bit first within each byte:
//
//     originalByteCount   32 bits
//     serializedTree      1 bit per Internal node, 9 bits per Leaf
//     payload             the code of every input byte, in input order
//     padding             zero bits up to the next byte boundary
//
// The tree is omitted when originalByteCount is zero.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
