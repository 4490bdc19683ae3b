package wordprobe

type Stats struct {
	Size     int
	Capacity int
	Free     int
}
