package cameras

type Camera struct {
	ID       string `json:"-" yaml:"-"`
	Nickname string `json:"nickname" yaml:"nickname"`
	Model    string `json:"model" yaml:"model"`
	MAC      string `json:"mac" yaml:"mac"`
	IP       string `json:"ip" yaml:"ip"`
	Enabled  bool   `json:"enabled" yaml:"enabled"`

	URLs `yaml:",inline"`
}

type Stream struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Summary struct {
	Hostname string   `json:"hostname"`
	RTSPPort int      `json:"rtsp_port"`
	Total    int      `json:"total_cameras"`
	Enabled  int      `json:"enabled_cameras"`
	Cameras  []string `json:"cameras"`
}

// Directory keeps cameras in insertion order. Stream URLs are derived once
// in AddCamera from the Hostname and RTSPPort at that moment.
// Directory has no locks.
type Directory struct {
	Hostname string
	RTSPPort int

	cameras map[string]*Camera
	order   []string
}

func NewDirectory(hostname string, rtspPort int) *Directory {
	return &Directory{
		Hostname: hostname,
		RTSPPort: rtspPort,
		cameras:  map[string]*Camera{},
	}
}

// AddCamera - insert new camera or replace existing one with the same id.
// Replaced camera keeps its position.
func (d *Directory) AddCamera(id, nickname, model, mac, ip string, enabled bool) {
	if _, ok := d.cameras[id]; !ok {
		d.order = append(d.order, id)
	}

	d.cameras[id] = &Camera{
		ID:       id,
		Nickname: nickname,
		Model:    model,
		MAC:      mac,
		IP:       ip,
		Enabled:  enabled,
		URLs:     NewURLs(d.Hostname, d.RTSPPort, id),
	}
}

func (d *Directory) Get(id string) (Camera, bool) {
	if cam, ok := d.cameras[id]; ok {
		return *cam, true
	}
	return Camera{}, false
}

func (d *Directory) RTSPURL(id string) (string, bool) {
	if cam, ok := d.cameras[id]; ok {
		return cam.RTSP, true
	}
	return "", false
}

func (d *Directory) RTSPURLs() []Stream {
	streams := make([]Stream, 0, len(d.order))
	for _, id := range d.order {
		streams = append(streams, Stream{ID: id, URL: d.cameras[id].RTSP})
	}
	return streams
}

// Cameras - copy of all cameras in insertion order
func (d *Directory) Cameras() []Camera {
	items := make([]Camera, 0, len(d.order))
	for _, id := range d.order {
		items = append(items, *d.cameras[id])
	}
	return items
}

func (d *Directory) IDs() []string {
	return append([]string{}, d.order...)
}

func (d *Directory) Count() int {
	return len(d.order)
}

func (d *Directory) EnabledCount() (n int) {
	for _, cam := range d.cameras {
		if cam.Enabled {
			n++
		}
	}
	return
}

func (d *Directory) Summary() Summary {
	return Summary{
		Hostname: d.Hostname,
		RTSPPort: d.RTSPPort,
		Total:    d.Count(),
		Enabled:  d.EnabledCount(),
		Cameras:  d.IDs(),
	}
}
