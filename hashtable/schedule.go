package hashtable

// primeSchedule is the fixed, monotone ascending sequence of primes the
// bucket count is always drawn from. len(Map.buckets) is always primeSchedule[Map.scheduleIdx].
var primeSchedule = []uint32{
	17, 29, 59, 127, 257, 521, 1049, 2099, 4201, 8419,
	16843, 33703, 67409, 134837, 269683, 539389, 1078787, 2157587, 4315183, 8630387,
	17260781, 34521589, 69043189, 138086407, 276172823, 552345671, 1104691373, 2209382761, 4294967291,
}

// scheduleFirst is the default initial bucket count's index in
// primeSchedule: 17, the smallest schedule prime.
const scheduleFirst = 0

var scheduleLast = len(primeSchedule) - 1
