// Rook and bishop magic feed in the layout cmd/magicgen writes. The
// multipliers are fixed, published values rather than the output of a
// magicgen run, so the file is maintained by hand; replace it wholesale
// with `go run ./cmd/magicgen -out internal/board/magic_table.go` to adopt
// a freshly searched table.

package board

const (
	rookTableSize   = 102400
	bishopTableSize = 5248
)

var rookMagicFeed = [64]Magic{
	{Mask: 0x000101010101017E, Magic: 0x0080001020400080, Shift: 52, Offset: 0},
	{Mask: 0x000202020202027C, Magic: 0x0040001000200040, Shift: 53, Offset: 4096},
	{Mask: 0x000404040404047A, Magic: 0x0080081000200080, Shift: 53, Offset: 6144},
	{Mask: 0x0008080808080876, Magic: 0x0080040800100080, Shift: 53, Offset: 8192},
	{Mask: 0x001010101010106E, Magic: 0x0080020400080080, Shift: 53, Offset: 10240},
	{Mask: 0x002020202020205E, Magic: 0x0080010200040080, Shift: 53, Offset: 12288},
	{Mask: 0x004040404040403E, Magic: 0x0080008001000200, Shift: 53, Offset: 14336},
	{Mask: 0x008080808080807E, Magic: 0x0080002040800100, Shift: 52, Offset: 16384},
	{Mask: 0x0001010101017E00, Magic: 0x0000800020400080, Shift: 53, Offset: 20480},
	{Mask: 0x0002020202027C00, Magic: 0x0000400020005000, Shift: 54, Offset: 22528},
	{Mask: 0x0004040404047A00, Magic: 0x0000801000200080, Shift: 54, Offset: 23552},
	{Mask: 0x0008080808087600, Magic: 0x0000800800100080, Shift: 54, Offset: 24576},
	{Mask: 0x0010101010106E00, Magic: 0x0000800400080080, Shift: 54, Offset: 25600},
	{Mask: 0x0020202020205E00, Magic: 0x0000800200040080, Shift: 54, Offset: 26624},
	{Mask: 0x0040404040403E00, Magic: 0x0000800100020080, Shift: 54, Offset: 27648},
	{Mask: 0x0080808080807E00, Magic: 0x0000800040800100, Shift: 53, Offset: 28672},
	{Mask: 0x00010101017E0100, Magic: 0x0000208000400080, Shift: 53, Offset: 30720},
	{Mask: 0x00020202027C0200, Magic: 0x0000404000201000, Shift: 54, Offset: 32768},
	{Mask: 0x00040404047A0400, Magic: 0x0000808010002000, Shift: 54, Offset: 33792},
	{Mask: 0x0008080808760800, Magic: 0x0000808008001000, Shift: 54, Offset: 34816},
	{Mask: 0x00101010106E1000, Magic: 0x0000808004000800, Shift: 54, Offset: 35840},
	{Mask: 0x00202020205E2000, Magic: 0x0000808002000400, Shift: 54, Offset: 36864},
	{Mask: 0x00404040403E4000, Magic: 0x0000010100020004, Shift: 54, Offset: 37888},
	{Mask: 0x00808080807E8000, Magic: 0x0000020000408104, Shift: 53, Offset: 38912},
	{Mask: 0x000101017E010100, Magic: 0x0000208080004000, Shift: 53, Offset: 40960},
	{Mask: 0x000202027C020200, Magic: 0x0000200040005000, Shift: 54, Offset: 43008},
	{Mask: 0x000404047A040400, Magic: 0x0000100080200080, Shift: 54, Offset: 44032},
	{Mask: 0x0008080876080800, Magic: 0x0000080080100080, Shift: 54, Offset: 45056},
	{Mask: 0x001010106E101000, Magic: 0x0000040080080080, Shift: 54, Offset: 46080},
	{Mask: 0x002020205E202000, Magic: 0x0000020080040080, Shift: 54, Offset: 47104},
	{Mask: 0x004040403E404000, Magic: 0x0000010080800200, Shift: 54, Offset: 48128},
	{Mask: 0x008080807E808000, Magic: 0x0000800080004100, Shift: 53, Offset: 49152},
	{Mask: 0x0001017E01010100, Magic: 0x0000204000800080, Shift: 53, Offset: 51200},
	{Mask: 0x0002027C02020200, Magic: 0x0000200040401000, Shift: 54, Offset: 53248},
	{Mask: 0x0004047A04040400, Magic: 0x0000100080802000, Shift: 54, Offset: 54272},
	{Mask: 0x0008087608080800, Magic: 0x0000080080801000, Shift: 54, Offset: 55296},
	{Mask: 0x0010106E10101000, Magic: 0x0000040080800800, Shift: 54, Offset: 56320},
	{Mask: 0x0020205E20202000, Magic: 0x0000020080800400, Shift: 54, Offset: 57344},
	{Mask: 0x0040403E40404000, Magic: 0x0000020001010004, Shift: 54, Offset: 58368},
	{Mask: 0x0080807E80808000, Magic: 0x0000800040800100, Shift: 53, Offset: 59392},
	{Mask: 0x00017E0101010100, Magic: 0x0000204000808000, Shift: 53, Offset: 61440},
	{Mask: 0x00027C0202020200, Magic: 0x0000200040008080, Shift: 54, Offset: 63488},
	{Mask: 0x00047A0404040400, Magic: 0x0000100020008080, Shift: 54, Offset: 64512},
	{Mask: 0x0008760808080800, Magic: 0x0000080010008080, Shift: 54, Offset: 65536},
	{Mask: 0x00106E1010101000, Magic: 0x0000040008008080, Shift: 54, Offset: 66560},
	{Mask: 0x00205E2020202000, Magic: 0x0000020004008080, Shift: 54, Offset: 67584},
	{Mask: 0x00403E4040404000, Magic: 0x0000010002008080, Shift: 54, Offset: 68608},
	{Mask: 0x00807E8080808000, Magic: 0x0000004081020004, Shift: 53, Offset: 69632},
	{Mask: 0x007E010101010100, Magic: 0x0000204000800080, Shift: 53, Offset: 71680},
	{Mask: 0x007C020202020200, Magic: 0x0000200040008080, Shift: 54, Offset: 73728},
	{Mask: 0x007A040404040400, Magic: 0x0000100020008080, Shift: 54, Offset: 74752},
	{Mask: 0x0076080808080800, Magic: 0x0000080010008080, Shift: 54, Offset: 75776},
	{Mask: 0x006E101010101000, Magic: 0x0000040008008080, Shift: 54, Offset: 76800},
	{Mask: 0x005E202020202000, Magic: 0x0000020004008080, Shift: 54, Offset: 77824},
	{Mask: 0x003E404040404000, Magic: 0x0000800100020080, Shift: 54, Offset: 78848},
	{Mask: 0x007E808080808000, Magic: 0x0000800041000080, Shift: 53, Offset: 79872},
	{Mask: 0x7E01010101010100, Magic: 0x00FFFCDDFCED714A, Shift: 52, Offset: 81920},
	{Mask: 0x7C02020202020200, Magic: 0x007FFCDDFCED714A, Shift: 53, Offset: 86016},
	{Mask: 0x7A04040404040400, Magic: 0x003FFFCDFFD88096, Shift: 53, Offset: 88064},
	{Mask: 0x7608080808080800, Magic: 0x0000040810002101, Shift: 53, Offset: 90112},
	{Mask: 0x6E10101010101000, Magic: 0x0001000204080011, Shift: 53, Offset: 92160},
	{Mask: 0x5E20202020202000, Magic: 0x0001000204000801, Shift: 53, Offset: 94208},
	{Mask: 0x3E40404040404000, Magic: 0x0001000082000401, Shift: 53, Offset: 96256},
	{Mask: 0x7E80808080808000, Magic: 0x0001FFFAABFAD1A2, Shift: 52, Offset: 98304},
}

var bishopMagicFeed = [64]Magic{
	{Mask: 0x0040201008040200, Magic: 0x0002020202020200, Shift: 58, Offset: 0},
	{Mask: 0x0000402010080400, Magic: 0x0002020202020000, Shift: 59, Offset: 64},
	{Mask: 0x0000004020100A00, Magic: 0x0004010202000000, Shift: 59, Offset: 96},
	{Mask: 0x0000000040221400, Magic: 0x0004040080000000, Shift: 59, Offset: 128},
	{Mask: 0x0000000002442800, Magic: 0x0001104000000000, Shift: 59, Offset: 160},
	{Mask: 0x0000000204085000, Magic: 0x0000821040000000, Shift: 59, Offset: 192},
	{Mask: 0x0000020408102000, Magic: 0x0000410410400000, Shift: 59, Offset: 224},
	{Mask: 0x0002040810204000, Magic: 0x0000104104104000, Shift: 58, Offset: 256},
	{Mask: 0x0020100804020000, Magic: 0x0000040404040400, Shift: 59, Offset: 320},
	{Mask: 0x0040201008040000, Magic: 0x0000020202020200, Shift: 59, Offset: 352},
	{Mask: 0x00004020100A0000, Magic: 0x0000040102020000, Shift: 59, Offset: 384},
	{Mask: 0x0000004022140000, Magic: 0x0000040400800000, Shift: 59, Offset: 416},
	{Mask: 0x0000000244280000, Magic: 0x0000011040000000, Shift: 59, Offset: 448},
	{Mask: 0x0000020408500000, Magic: 0x0000008210400000, Shift: 59, Offset: 480},
	{Mask: 0x0002040810200000, Magic: 0x0000004104104000, Shift: 59, Offset: 512},
	{Mask: 0x0004081020400000, Magic: 0x0000002082082000, Shift: 59, Offset: 544},
	{Mask: 0x0010080402000200, Magic: 0x0004000808080800, Shift: 59, Offset: 576},
	{Mask: 0x0020100804000400, Magic: 0x0002000404040400, Shift: 59, Offset: 608},
	{Mask: 0x004020100A000A00, Magic: 0x0001000202020200, Shift: 57, Offset: 640},
	{Mask: 0x0000402214001400, Magic: 0x0000800802004000, Shift: 57, Offset: 768},
	{Mask: 0x0000024428002800, Magic: 0x0000800400A00000, Shift: 57, Offset: 896},
	{Mask: 0x0002040850005000, Magic: 0x0000200100884000, Shift: 57, Offset: 1024},
	{Mask: 0x0004081020002000, Magic: 0x0000400082082000, Shift: 59, Offset: 1152},
	{Mask: 0x0008102040004000, Magic: 0x0000200041041000, Shift: 59, Offset: 1184},
	{Mask: 0x0008040200020400, Magic: 0x0002080010101000, Shift: 59, Offset: 1216},
	{Mask: 0x0010080400040800, Magic: 0x0001040008080800, Shift: 59, Offset: 1248},
	{Mask: 0x0020100A000A1000, Magic: 0x0000208004010400, Shift: 57, Offset: 1280},
	{Mask: 0x0040221400142200, Magic: 0x0000404004010200, Shift: 55, Offset: 1408},
	{Mask: 0x0002442800284400, Magic: 0x0000840000802000, Shift: 55, Offset: 1920},
	{Mask: 0x0004085000500800, Magic: 0x0000404002011000, Shift: 57, Offset: 2432},
	{Mask: 0x0008102000201000, Magic: 0x0000808001041000, Shift: 59, Offset: 2560},
	{Mask: 0x0010204000402000, Magic: 0x0000404000820800, Shift: 59, Offset: 2592},
	{Mask: 0x0004020002040800, Magic: 0x0001041000202000, Shift: 59, Offset: 2624},
	{Mask: 0x0008040004081000, Magic: 0x0000820800101000, Shift: 59, Offset: 2656},
	{Mask: 0x00100A000A102000, Magic: 0x0000104400080800, Shift: 57, Offset: 2688},
	{Mask: 0x0022140014224000, Magic: 0x0000020080080080, Shift: 55, Offset: 2816},
	{Mask: 0x0044280028440200, Magic: 0x0000404040040100, Shift: 55, Offset: 3328},
	{Mask: 0x0008500050080400, Magic: 0x0000808100020100, Shift: 57, Offset: 3840},
	{Mask: 0x0010200020100800, Magic: 0x0001010100020800, Shift: 59, Offset: 3968},
	{Mask: 0x0020400040201000, Magic: 0x0000808080010400, Shift: 59, Offset: 4000},
	{Mask: 0x0002000204081000, Magic: 0x0000820820004000, Shift: 59, Offset: 4032},
	{Mask: 0x0004000408102000, Magic: 0x0000410410002000, Shift: 59, Offset: 4064},
	{Mask: 0x000A000A10204000, Magic: 0x0000082088001000, Shift: 57, Offset: 4096},
	{Mask: 0x0014001422400000, Magic: 0x0000002011000800, Shift: 57, Offset: 4224},
	{Mask: 0x0028002844020000, Magic: 0x0000080100400400, Shift: 57, Offset: 4352},
	{Mask: 0x0050005008040200, Magic: 0x0001010101000200, Shift: 57, Offset: 4480},
	{Mask: 0x0020002010080400, Magic: 0x0002020202000400, Shift: 59, Offset: 4608},
	{Mask: 0x0040004020100800, Magic: 0x0001010101000200, Shift: 59, Offset: 4640},
	{Mask: 0x0000020408102000, Magic: 0x0000410410400000, Shift: 59, Offset: 4672},
	{Mask: 0x0000040810204000, Magic: 0x0000208208200000, Shift: 59, Offset: 4704},
	{Mask: 0x00000A1020400000, Magic: 0x0000002084100000, Shift: 59, Offset: 4736},
	{Mask: 0x0000142240000000, Magic: 0x0000000020880000, Shift: 59, Offset: 4768},
	{Mask: 0x0000284402000000, Magic: 0x0000001002020000, Shift: 59, Offset: 4800},
	{Mask: 0x0000500804020000, Magic: 0x0000040408020000, Shift: 59, Offset: 4832},
	{Mask: 0x0000201008040200, Magic: 0x0004040404040000, Shift: 59, Offset: 4864},
	{Mask: 0x0000402010080400, Magic: 0x0002020202020000, Shift: 59, Offset: 4896},
	{Mask: 0x0002040810204000, Magic: 0x0000104104104000, Shift: 58, Offset: 4928},
	{Mask: 0x0004081020400000, Magic: 0x0000002082082000, Shift: 59, Offset: 4992},
	{Mask: 0x000A102040000000, Magic: 0x0000000020841000, Shift: 59, Offset: 5024},
	{Mask: 0x0014224000000000, Magic: 0x0000000000208800, Shift: 59, Offset: 5056},
	{Mask: 0x0028440200000000, Magic: 0x0000000010020200, Shift: 59, Offset: 5088},
	{Mask: 0x0050080402000000, Magic: 0x0000000404080200, Shift: 59, Offset: 5120},
	{Mask: 0x0020100804020000, Magic: 0x0000040404040400, Shift: 59, Offset: 5152},
	{Mask: 0x0040201008040200, Magic: 0x0002020202020200, Shift: 58, Offset: 5184},
}
